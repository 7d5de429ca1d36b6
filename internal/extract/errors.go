package extract

import "errors"

var (
	// ErrUnsupportedFormat indicates a media type outside PDF/DOC/DOCX/plain text.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorruptDocument indicates a payload that could not be decoded.
	ErrCorruptDocument = errors.New("corrupt document")
	// ErrEmptyContent indicates a document with no extractable text.
	ErrEmptyContent = errors.New("document contains no extractable text")
)
