package domain

import "errors"

// Domain errors.
var (
	ErrAuth               = errors.New("authentication failed")
	ErrNotFound           = errors.New("not found")
	ErrNotMember          = errors.New("current user is not a member of given project")
	ErrConfiguration      = errors.New("invalid configuration")
	ErrMilestoneNotFound  = errors.New("no milestone with this iid found")
	ErrMilestoneAmbiguous = errors.New("more than one milestone with this iid found")
	ErrInvalidSelection   = errors.New("invalid label selection")
	ErrInvalidAnswer      = errors.New("invalid answer")
	ErrInputClosed        = errors.New("input closed")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrNoDefaultProfile   = errors.New("no default profile configured")
	ErrConfigNotFound     = errors.New("config file not found")
	ErrConfigExists       = errors.New("config file already exists")
	ErrEmptyURL           = errors.New("url cannot be empty")
	ErrLogNotFound        = errors.New("log file not found")
)
