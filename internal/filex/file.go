package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDataDir returns dir after making sure it exists. When dir is empty,
// a "storykeeper" directory under the user's config directory is used, with
// the current working directory as a last resort.
func EnsureDataDir(dir string) (string, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base, err = os.Getwd()
			if err != nil {
				return "", fmt.Errorf("getwd: %w", err)
			}
		}
		dir = filepath.Join(base, "storykeeper")
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
