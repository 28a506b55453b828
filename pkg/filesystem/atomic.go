package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boardmirror/boardmirror/pkg/logging"
	"github.com/boardmirror/boardmirror/pkg/must"
)

// temporaryNamePrefix is the file name prefix used for intermediate
// temporary files created during an atomic write.
const temporaryNamePrefix = ".boardmirror-atomic-write"

// WriteFileAtomic writes data to disk in an atomic fashion by writing to an
// intermediate temporary file in the same directory and renaming it into
// place, so that readers never observe a partially-written file.
func WriteFileAtomic(path string, data []byte, permissions os.FileMode, logger *logging.Logger) error {
	temporary, err := os.CreateTemp(filepath.Dir(path), temporaryNamePrefix)
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}

	if _, err = temporary.Write(data); err != nil {
		must.Close(temporary, logger)
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to write temporary file: %w", err)
	}

	if err = temporary.Close(); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	if err = os.Chmod(temporary.Name(), permissions); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to set file permissions: %w", err)
	}

	if err = os.Rename(temporary.Name(), path); err != nil {
		must.OSRemove(temporary.Name(), logger)
		return fmt.Errorf("unable to rename file into place: %w", err)
	}

	return nil
}
