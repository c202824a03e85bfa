//go:build !android

package utils

import "testing"

func TestStorageDefault(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Errorf("EnsureStorageDir() = %v, want nil", err)
	}
	if got := GetStoragePath(); got != "" {
		t.Errorf("GetStoragePath() = %q, want empty (gdata picks the directory)", got)
	}
}
