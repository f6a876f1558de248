//go:build !linux && !darwin

package billy

import (
	"os"
	"time"
)

func immutable(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		return false, err
	}
	return false, nil
}

func birthTime(path string) (time.Time, error) {
	if _, err := os.Lstat(path); err != nil {
		return time.Time{}, err
	}
	return time.Time{}, nil
}

func nameMax(string) (int, error) {
	return defaultNameMax, nil
}
