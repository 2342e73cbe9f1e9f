package tangle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var (
	// linkMarkerRe matches the document-link markers the emitter writes in
	// front of decorated blocks.
	linkMarkerRe = regexp.MustCompile(`\[\[file:[^\]]+\]\[[^\]]*\]\]`)

	// endMarkerRe matches the "<name> ends here" trailer comments.
	endMarkerRe = regexp.MustCompile(`^\s*(#|//|;;|--)\s+\S+ ends here\s*$`)

	// refMarkerRe matches lines holding nothing but a noweb reference,
	// with or without a comment leader in front of it.
	refMarkerRe = regexp.MustCompile(`^\s*(?:(?:#|//|;;|--)\s*)?<<[^<>\r\n]+>>\s*$`)
)

// Clean strips decorative marker lines from a previously tangled file,
// deleting their containing lines and leaving every other line untouched.
// It returns the number of lines removed; the file is rewritten only when
// at least one marker was found.
func Clean(fs afero.Fs, path string) (int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if linkMarkerRe.MatchString(line) || endMarkerRe.MatchString(line) || refMarkerRe.MatchString(line) {
			removed++
			continue
		}
		kept = append(kept, line)
	}
	if removed == 0 {
		return 0, nil
	}

	info, err := fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(strings.Join(kept, "\n")), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	return removed, nil
}
