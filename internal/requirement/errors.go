package requirement

import "errors"

// ErrEmptyRequirements is returned when the requirements text is blank.
var ErrEmptyRequirements = errors.New("empty requirements text")
