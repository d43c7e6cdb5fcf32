package deploy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RuntimeFileName is the name the runtime support file gets in the
// destination directory.
const RuntimeFileName = "fryTempura.js"

// WriteFile writes data to outputPath, creating parent directories if
// they don't exist.
//
// The file is written with 0644 permissions (owner read/write, group/others
// read-only), which is the standard permission for non-executable files.
func WriteFile(outputPath string, data []byte) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: outputPath, Err: fmt.Errorf("failed to create directory %s: %w", dir, err)}
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return &WriteError{Path: outputPath, Err: err}
	}

	return nil
}

// Runtime copies the runtime support file at srcPath into destDir as
// RuntimeFileName and returns the path it wrote. The copy is byte-for-byte
// and overwrites any previous deployment.
func Runtime(srcPath, destDir string) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("runtime file %s: %w", srcPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("runtime file %s is a directory", srcPath)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", &WriteError{Path: destDir, Err: err}
	}

	dstPath := filepath.Join(destDir, RuntimeFileName)
	if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
		return "", err
	}
	return dstPath, nil
}

// WriteError reports a destination that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// copyFile streams src into dst with the given permissions. Any failure
// on the destination side is reported as a WriteError.
func copyFile(src, dst string, mode os.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("runtime file %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return &WriteError{Path: dst, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: dst, Err: cerr}
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return &WriteError{Path: dst, Err: err}
	}
	return nil
}
