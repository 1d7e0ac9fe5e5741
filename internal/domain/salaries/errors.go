package salaries

import "errors"

var ErrNotFound = errors.New("salary record not found")
