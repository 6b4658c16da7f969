package sheet

import "errors"

var (
	// ErrUnknownAttribute is returned for a formatting flag other than bold, italic, or underline.
	ErrUnknownAttribute = errors.New("unknown format attribute")

	// ErrInvalidAlign is returned for an alignment other than left, center, or right.
	ErrInvalidAlign = errors.New("invalid alignment")

	// ErrReadOnlyField is returned when an edit targets id or rowNumber.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrDuplicateID marks a stored snapshot whose rows share an id.
	ErrDuplicateID = errors.New("duplicate row id")
)
