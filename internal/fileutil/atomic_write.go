package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriteFile replaces filename with data so readers see either the old
// or the new content. Missing parent directories are created with mode 0700.
// It reports whether filename was newly created.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) (created bool, err error) {
	_, statErr := os.Stat(filename)
	created = os.IsNotExist(statErr)

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false, fmt.Errorf("could not create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return false, err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return false, fmt.Errorf("could not write %s: %w", tmpName, err)
	}

	if err = os.Chmod(tmpName, perm); err != nil {
		return false, err
	}
	if err = os.Rename(tmpName, filename); err != nil {
		return false, err
	}
	return created, nil
}
