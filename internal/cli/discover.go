package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands globs into a sorted, deduplicated list of regular files.
// Patterns support doublestar (`views/**/*.xml`). A literal path that exists
// is accepted as-is even when it contains no meta characters.
func Discover(globs, excludes []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		if matches == nil {
			// Not an error for patterns, but a missing literal path is.
			if info, statErr := os.Stat(pattern); statErr == nil && info.Mode().IsRegular() {
				add(pattern)
				continue
			}
			continue
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			add(m)
		}
	}

	if len(excludes) > 0 {
		kept := files[:0]
		for _, f := range files {
			if excluded(f, excludes) {
				continue
			}
			kept = append(kept, f)
		}
		files = kept
	}

	sort.Strings(files)
	return files, nil
}

func excluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if ok, err := doublestar.PathMatch(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
