package repository

import "errors"

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrApplicationExists   = errors.New("already applied to this job")
	ErrApplicationNotFound = errors.New("application not found")
	ErrReferenceMissing    = errors.New("referenced record not found")
)
