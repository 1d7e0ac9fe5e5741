package attachments

import "errors"

var (
	ErrNotFound = errors.New("attachment not found")

	// ErrDocumentNotFound is returned by Attach when the target document does
	// not exist; the copied file has already been cleaned up.
	ErrDocumentNotFound = errors.New("document not found")
)
