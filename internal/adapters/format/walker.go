package format

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// goFiles yields every .go file below root in lexical order. Hidden
// directories are skipped. A walk error is reported through errp.
func goFiles(root string, errp *error) iter.Seq[string] {
	return func(yield func(string) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || filepath.Ext(path) != ".go" {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			*errp = err
		}
	}
}
