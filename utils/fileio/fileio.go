package fileio

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// LogFunc matches the signature of logging functions used across the app (like LogErrorf).
type LogFunc func(format string, args ...interface{})

// Close closes the given io.Closer and logs any error that occurs.
// If logFunc is nil, the error is ignored.
func Close(c io.Closer, logFunc LogFunc, msg string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		if logFunc != nil {
			logFunc("%s: %v", msg, err)
		}
	}
}

// Exists reports whether path names a regular file (directories don't count).
func Exists(fs afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// MkdirAll creates every directory in dirs, stopping at the first failure.
func MkdirAll(fs afero.Fs, perm os.FileMode, dirs ...string) error {
	for _, dir := range dirs {
		if err := fs.MkdirAll(dir, perm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// CopyFile copies src over dst, truncating dst if it exists.
func CopyFile(fs afero.Fs, src, dst string) (err error) {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer Close(in, nil, "close source")

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// WriteFile truncates or creates path on fs and hands the open file to write.
// If writing or closing fails the partial file is removed.
func WriteFile(fs afero.Fs, path string, write func(w io.Writer) error) (err error) {
	out, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = fs.Remove(path)
		}
	}()
	return write(out)
}
