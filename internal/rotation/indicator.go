package rotation

import (
	"fmt"
	"strings"
)

// Indicator is the on-screen projection of a committed rotation index:
// a "current/total" counter and a dot strip. It is derived state only;
// nothing in the core reads it back.
type Indicator struct {
	EntityID string
	Index    int
	Total    int
	Counter  string
	Dots     string
}

const (
	dotActive   = "●"
	dotInactive = "○"
)

// Project renders the indicator for a committed index. Pure: it is invoked
// after every commit and after a carousel manual snap, never speculatively
// during fade phases.
func Project(entityID string, committedIndex, total int) Indicator {
	if total < 1 {
		total = 1
	}
	if committedIndex < 0 || committedIndex >= total {
		committedIndex = 0
	}

	var dots strings.Builder
	for i := 0; i < total; i++ {
		if i == committedIndex {
			dots.WriteString(dotActive)
		} else {
			dots.WriteString(dotInactive)
		}
	}

	return Indicator{
		EntityID: entityID,
		Index:    committedIndex,
		Total:    total,
		Counter:  fmt.Sprintf("%d/%d", committedIndex+1, total),
		Dots:     dots.String(),
	}
}
