package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/cvparse/cmd/cvparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("list on a fresh database shows hint", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No records found")
		assert.FileExists(t, m.DBPath)
	})

	t.Run("reports database path on open failure", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = "/nonexistent/dir/test.db"
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "/nonexistent/dir/test.db")
		assert.Contains(t, stderr.String(), "CVPARSE_DB")
	})

	t.Run("parse without store does not open the database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "unused", "test.db")
		input := filepath.Join(dir, "inbox")
		require.NoError(t, os.MkdirAll(input, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(input, "broken.pdf"), []byte("not a pdf"), 0644))
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"parse", input, "--out", filepath.Join(dir, "out")}, stdout, stderr)

		require.Error(t, err, "every document failed")
		assert.Contains(t, stderr.String(), "fail")
		assert.Contains(t, stderr.String(), "broken.pdf")
		assert.Contains(t, stdout.String(), "failed 1")
		assert.NoFileExists(t, m.DBPath)
	})

	t.Run("global flags before parse still wire the runner", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "unused", "test.db")
		input := filepath.Join(dir, "inbox")
		require.NoError(t, os.MkdirAll(input, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(input, "broken.pdf"), []byte("not a pdf"), 0644))
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		var err error
		require.NotPanics(t, func() {
			err = m.Run(context.Background(), []string{"-v", "parse", "-o", filepath.Join(dir, "out"), input}, stdout, stderr)
		})

		require.Error(t, err, "every document failed")
		assert.Contains(t, stdout.String(), "failed 1")
		assert.Contains(t, stderr.String(), "level=DEBUG")
		assert.NoFileExists(t, m.DBPath)
	})

	t.Run("parse reports invalid layout file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		layout := filepath.Join(dir, "layout.yaml")
		require.NoError(t, os.WriteFile(layout, []byte("split_ratio: 2\n"), 0644))
		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "test.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"parse", dir, "--layout", layout}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("delete requires force", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"delete", "some-id"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})
}
