// Package discovery resolves command-line arguments into the text
// files to analyze: plain paths, directories walked recursively, and
// glob patterns with ** support.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// textExtensions are the file types batch commands pick up when
// walking a directory.
var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// isTextFile returns true for files batch commands analyze by default.
func isTextFile(path string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(path))]
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Resolve expands args into a deduplicated, sorted list of file paths.
// Each arg may be an existing file (used as-is, whatever its
// extension), a directory (walked recursively for text and Markdown
// files) or a glob pattern. A nonexistent path that is not a glob
// pattern is an error; a glob matching nothing resolves to nothing.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			if err := walkDir(arg, add); err != nil {
				return nil, err
			}
		case err == nil:
			add(arg)
		case hasGlobChars(arg):
			if err := expandGlob(arg, add); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("no such file or directory: %s", arg)
		}
	}

	sort.Strings(result)
	return result, nil
}

// walkDir adds every text file under dir.
func walkDir(dir string, add func(string)) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() && isTextFile(path) {
			add(path)
		}
		return nil
	})
}

// expandGlob adds files matching a doublestar pattern, relative to the
// current directory.
func expandGlob(pattern string, add func(string)) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob pattern: %s", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("expanding %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err == nil && !info.IsDir() {
			add(m)
		}
	}
	return nil
}
