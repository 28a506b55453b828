package filesystem

import (
	"fmt"
	"os"
	"time"

	"github.com/mutagen-io/extstat"
)

// ModificationTime returns the full-precision (second plus sub-second)
// modification time of the file at path. It uses extstat rather than a bare
// os.Stat so that FileLink.IsOutdated's mtime comparison is stable across
// platforms whose os.FileInfo.ModTime() truncates sub-second precision.
func ModificationTime(path string) (time.Time, error) {
	stat, err := extstat.NewFromFileName(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to stat %q: %w", path, err)
	}
	return stat.ModificationTime, nil
}

// SetModificationTime stamps the file at path with the given modification
// time (and a matching access time, since most platforms don't allow
// setting one without the other).
func SetModificationTime(path string, t time.Time) error {
	if err := os.Chtimes(path, t, t); err != nil {
		return fmt.Errorf("unable to set modification time on %q: %w", path, err)
	}
	return nil
}
