package resume

import "errors"

// ErrInsufficientContent is returned when the text is non-empty but
// yields no contact information, no experience, and no skills.
var ErrInsufficientContent = errors.New("insufficient resume content")
