package domain

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this project")
	ErrProjectNotApproved  = errors.New("cannot apply to non-approved projects")
)
