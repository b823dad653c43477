package pdf

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns a stable hex digest of the document bytes, used
// to correlate log entries across repeated uploads of the same file.
func ContentHash(r io.ReaderAt, size int64) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, io.NewSectionReader(r, 0, size)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
