// Package fs provides file-based input discovery and record export.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cvparse"
)

// Discover expands paths into the list of files to parse. A file path is
// kept as given whatever its extension; a directory is walked recursively
// and contributes the files whose extension matches ext, case-insensitively,
// in lexical order. Duplicate paths are reported once.
func Discover(paths []string, ext string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if os.IsNotExist(err) {
			return nil, cvparse.Errorf(cvparse.ENOTFOUND, "path not found: %s", root)
		} else if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(p), ext) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
