package fileutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// JoinInsideRoot joins name onto root. It fails when name is absolute or
// would resolve to root itself or to a location outside root.
func JoinInsideRoot(root, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty file name")
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("'%s' must be relative to '%s'", name, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("could not get absolute path for root '%s': %w", root, err)
	}
	absPath := filepath.Join(absRoot, name)

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("could not get relative path: %w", err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("'%s' is outside of '%s'", name, root)
	}

	return filepath.Join(root, name), nil
}
