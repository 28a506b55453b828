package filesystem

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeRelativePath applies Unicode NFC normalization to each component
// of a relative path. Some filesystems (notably HFS+) store filenames in
// NFD form; without normalization, a destination path built by joining a
// write directory with such a relative path can carry a different Unicode
// representation than an otherwise-identical path built on another
// platform, which would make two logically-equal FileLink destinations
// compare unequal.
func NormalizeRelativePath(path string) string {
	components := strings.Split(path, string(filepath.Separator))
	for i, c := range components {
		components[i] = norm.NFC.String(c)
	}
	return filepath.Join(components...)
}
