package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// isCatalog reports whether path names a file check should read.
func isCatalog(path string) bool {
	return strings.HasSuffix(path, ".xml")
}

// collectCatalogFiles finds all catalog files from the given paths.
// Supports:
//   - Direct file paths: "main.rmc.xml"
//   - Directory paths: "./catalogs"
//   - Recursive pattern: "./..."
//
// Files named directly are kept whatever their extension.
func collectCatalogFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") || path == "..." {
			root := strings.TrimSuffix(strings.TrimSuffix(path, "..."), "/")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isCatalog(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, errors.Wrapf(err, "walking %s", root)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", path)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, errors.Wrapf(err, "reading directory %s", path)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isCatalog(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			files = append(files, path)
		}
	}

	return files, nil
}
