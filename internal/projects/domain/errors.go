package domain

import "errors"

var ErrProjectNotFound = errors.New("project not found")

// ValidationError carries the user-facing message for malformed input.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
