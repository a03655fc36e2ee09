// Package keywords models the fixed topic vocabulary a speaker can tag a
// talk with, and the toggle-style selection the submission form exposes
package keywords

// MaxSelected is the most keywords a single submission may carry
const MaxSelected = 3

// Vocabulary is the fixed list of selectable topics, in display order
var Vocabulary = []string{
	"AWS",
	"클라우드 컴퓨팅",
	"DevOps",
	"프론트엔드",
	"백엔드",
	"모바일",
}

// Known reports whether kw is part of the vocabulary
func Known(kw string) bool {
	for _, v := range Vocabulary {
		if v == kw {
			return true
		}
	}
	return false
}

// Selection is an ordered set of chosen keywords with toggle semantics.
// The zero value is ready to use
type Selection struct {
	chosen []string
}

// NewSelection builds a selection by toggling each keyword in order, so
// duplicates cancel out and unknown or overflow entries are dropped
func NewSelection(kws ...string) Selection {
	var s Selection
	for _, kw := range kws {
		s.Toggle(kw)
	}
	return s
}

// Toggle selects kw if absent and deselects it if present. Selecting an
// unknown keyword, or a fourth keyword while three are active, is a no-op.
// Returns whether the selection changed
func (s *Selection) Toggle(kw string) bool {
	for i, c := range s.chosen {
		if c == kw {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			return true
		}
	}
	if !Known(kw) || len(s.chosen) >= MaxSelected {
		return false
	}
	s.chosen = append(s.chosen, kw)
	return true
}

// Has reports whether kw is currently selected
func (s *Selection) Has(kw string) bool {
	for _, c := range s.chosen {
		if c == kw {
			return true
		}
	}
	return false
}

// Len returns the number of selected keywords
func (s *Selection) Len() int { return len(s.chosen) }

// List returns the selected keywords in selection order as a fresh slice
func (s *Selection) List() []string {
	out := make([]string, len(s.chosen))
	copy(out, s.chosen)
	return out
}

// Validate checks an already-assembled keyword list against the vocabulary,
// the size cap, and duplicate entries. Used when the list arrives over the
// wire rather than through Toggle
func Validate(kws []string) error {
	if len(kws) > MaxSelected {
		return ErrTooMany
	}
	seen := make(map[string]struct{}, len(kws))
	for _, kw := range kws {
		if !Known(kw) {
			return ErrUnknown
		}
		if _, dup := seen[kw]; dup {
			return ErrDuplicate
		}
		seen[kw] = struct{}{}
	}
	return nil
}
