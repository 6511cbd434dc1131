package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/cvparse"
)

// Ensure FileStore implements cvparse.RecordStore at compile time.
var _ cvparse.RecordStore = (*FileStore)(nil)

// FileStore implements cvparse.RecordStore. Records are saved as JSON files
// to a temporary directory and moved into the output directory on Commit,
// so an aborted run leaves earlier output untouched.
type FileStore struct {
	baseDir string
	name    string

	mu   sync.Mutex
	used map[string]int
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved into baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		used:    make(map[string]int),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes rec as <stem>.json, where stem comes from the record's
// source file name. Repeated stems get a numeric suffix.
func (s *FileStore) Save(ctx context.Context, rec *cvparse.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	stem, err := SourceToStem(rec.Source)
	if err != nil {
		return err
	}

	data, err := FormatRecord(rec)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	s.used[stem]++
	if n := s.used[stem]; n > 1 {
		stem = fmt.Sprintf("%s-%d", stem, n)
	}

	return os.WriteFile(filepath.Join(s.tempDir(), stem+".json"), data, 0644)
}

// FormatRecord encodes a record as indented JSON with a trailing newline.
func FormatRecord(rec *cvparse.Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Commit moves the staged record files into the final directory, replacing
// files of the same name. Nothing else in the final directory is touched, so
// it may safely be the directory the sources were read from.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged, err := os.ReadDir(s.tempDir())
	if os.IsNotExist(err) {
		// Nothing saved: leave any previous output in place.
		return nil
	} else if err != nil {
		return err
	}

	if err := os.MkdirAll(s.finalDir(), 0755); err != nil {
		return err
	}
	for _, e := range staged {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Rename(filepath.Join(s.tempDir(), e.Name()), filepath.Join(s.finalDir(), e.Name())); err != nil {
			return err
		}
	}

	clear(s.used)
	return os.RemoveAll(s.tempDir())
}

func (s *FileStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.used)
	return os.RemoveAll(s.tempDir())
}

// SourceToStem derives an output file stem from a source path.
// Example: profiles/Jane Doe.pdf → Jane Doe
func SourceToStem(source string) (string, error) {
	base := filepath.Base(filepath.Clean(source))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == ".." || stem == string(filepath.Separator) {
		return "", cvparse.Errorf(cvparse.EINVALID, "cannot derive file name from source %q", source)
	}
	return stem, nil
}
