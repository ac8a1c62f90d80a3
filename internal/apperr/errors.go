package apperr

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrSyntax         = errors.New("syntax error")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrEscapedName    = errors.New("unusable escaped name")
)
