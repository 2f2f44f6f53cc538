package selector

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/phrazzld/randpic-api/internal/gallery"
)

// WildcardToken matches every indexed image regardless of path content.
const WildcardToken = "all"

// ErrNoMatch is returned when a filter leaves no images to choose from.
var ErrNoMatch = errors.New("no images match filter")

// Filter returns the entries whose path contains token as a substring, in
// their original order. The match is case-sensitive and ignores path
// segment boundaries. WildcardToken returns entries unchanged.
func Filter(entries []string, token string) []string {
	if token == WildcardToken {
		return entries
	}

	matched := make([]string, 0, len(entries))
	for entry := range Matching(slices.Values(entries), token) {
		matched = append(matched, entry)
	}
	return matched
}

// Matching yields the paths from seq that contain token. WildcardToken
// yields every path.
func Matching(seq iter.Seq[string], token string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range seq {
			if token != WildcardToken && !strings.Contains(path, token) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// Select filters the index by token and draws one matching path. The
// wildcard draws straight from the index; other tokens collect only the
// matching paths.
func (p *Picker) Select(idx *gallery.Index, token string) (string, error) {
	var (
		path string
		err  error
	)
	if token == WildcardToken {
		path, err = p.pickFrom(idx.Len(), idx.At)
	} else {
		path, err = p.Pick(slices.Collect(Matching(idx.All(), token)))
	}
	if err != nil {
		return "", fmt.Errorf("filter %q: %w", token, err)
	}
	return path, nil
}
