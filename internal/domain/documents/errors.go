package documents

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicateNumber = errors.New("document number already exists")
)
