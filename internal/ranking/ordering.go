// Package ranking implements the quiz scoring and ranking core: reducing an
// attempt history to per-group best attempts, building per-track leaderboards,
// and aggregating cross-track composite ratings. Every function here is a pure
// function over a snapshot of attempts; persistence and transport live
// elsewhere.
package ranking

import (
	"campus-quiz/internal/domain"
)

// Less reports whether attempt a ranks strictly ahead of attempt b under the
// best-attempt ordering: higher score first, then lower time taken (attempts
// without a measured time sort last), then more recent creation time.
//
// This ordering is applied identically everywhere "best" is computed. If two
// attempts tie on all three keys, Less returns false for both directions and
// the caller's input order decides.
func Less(a, b domain.Attempt) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	switch {
	case a.TimeTaken != nil && b.TimeTaken == nil:
		return true
	case a.TimeTaken == nil && b.TimeTaken != nil:
		return false
	case a.TimeTaken != nil && b.TimeTaken != nil && *a.TimeTaken != *b.TimeTaken:
		return *a.TimeTaken < *b.TimeTaken
	}
	return a.CreatedAt.After(b.CreatedAt)
}
