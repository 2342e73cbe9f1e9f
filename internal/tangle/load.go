package tangle

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Stale reports whether companion needs regenerating from docPath: true when
// the companion is missing or older than the document. This is the staleness
// half of the load convenience; execution stays with the caller.
func Stale(fs afero.Fs, docPath, companion string) (bool, error) {
	docInfo, err := fs.Stat(docPath)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", docPath, err)
	}

	genInfo, err := fs.Stat(companion)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", companion, err)
	}

	return docInfo.ModTime().After(genInfo.ModTime()), nil
}
