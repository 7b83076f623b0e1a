package file

import (
	"path/filepath"

	"github.com/google/uuid"
)

// NewOutputPath returns a fresh, uniquely named path in dir with the given
// extension, e.g. "out/6f1c...e2.wav".
func NewOutputPath(dir string, ext string) string {
	return filepath.Join(dir, uuid.New().String()+ext)
}
