package filesystem

import "os"

// IsSymbolicLink reports whether the file at path is itself a symbolic
// link, without following it.
func IsSymbolicLink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// IsRegularFile reports whether the file at path exists and is a regular
// file (not a directory, symlink, device, etc.).
func IsRegularFile(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
