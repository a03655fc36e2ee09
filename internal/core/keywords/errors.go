package keywords

import perr "podium/internal/platform/errors"

// Validation failures for wire-supplied keyword lists
var (
	ErrTooMany   = perr.Newf(perr.ErrorCodeValidation, "keywords: at most %d selections", MaxSelected)
	ErrUnknown   = perr.New(perr.ErrorCodeValidation, "keywords: not in vocabulary")
	ErrDuplicate = perr.New(perr.ErrorCodeValidation, "keywords: duplicate selection")
)
