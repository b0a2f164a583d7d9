package file

import (
	"io/fs"
	"os"
)

// Copy copies <src> file path to <dst> file path with <perm> permissions, overwriting <dst> if it exists
func Copy(src, dst string, perm fs.FileMode) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return Write(dst, input, perm)
}

// Write writes <data> to <dst> file path with <perm> permissions, overwriting <dst> if it exists
func Write(dst string, data []byte, perm fs.FileMode) error {
	err := os.WriteFile(dst, data, perm)
	if err != nil {
		return err
	}
	return nil
}

// Exists returns true if anything (file, directory, link target) exists at <path>.
//
// Empty <path> never exists.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
