package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// AutoDiscoverPatterns are the glob patterns used to locate a token catalog
// file when no explicit path is configured. They cover the common naming
// conventions for design-token files.
var AutoDiscoverPatterns = []string{
	"tokens.json",
	"**/tokens.json",
	"**/*.tokens.json",
	"**/design-tokens.json",
}

// Discover searches root for catalog files matching AutoDiscoverPatterns.
// Matches are deduplicated and returned sorted by path so the result is
// deterministic across filesystems.
func Discover(root string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var matches []string

	for _, pattern := range AutoDiscoverPatterns {
		found, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range found {
			if !seen[m] {
				seen[m] = true
				matches = append(matches, m)
			}
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// DiscoverFirst returns the first discovered catalog path under root, or an
// error when none match.
func DiscoverFirst(root string) (string, error) {
	matches, err := Discover(root)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no token catalog found under %s (looked for %v)", root, AutoDiscoverPatterns)
	}
	return matches[0], nil
}
