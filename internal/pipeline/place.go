package pipeline

import (
	"io"
	"os"
)

// copyFile copies src to dst byte for byte, mode 0644. The destination is
// truncated if it exists; collision resolution guarantees it does not.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// placeFile copies src to dst; in move mode the source is removed after the
// copy succeeds, which also works across filesystems where a rename cannot.
func placeFile(src, dst string, move bool) error {
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if move {
		return os.Remove(src)
	}
	return nil
}
