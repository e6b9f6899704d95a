package domain

import "errors"

// Repository-level errors. Implementations translate driver errors into these.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("duplicate key")
	ErrReferenceMissing = errors.New("referenced row missing")
)
