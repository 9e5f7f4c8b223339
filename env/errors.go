package env

import (
	"errors"

	"github.com/ardnew/envlayer/pkg"
)

var (
	// ErrValidation is returned when a hash or append specification is
	// malformed.
	ErrValidation = pkg.NewError("invalid environment declaration")
	// ErrEvaluate is returned when a deferred value fails.
	ErrEvaluate = pkg.NewError("evaluate environment value")
	// ErrSerialize is returned when a value cannot be rendered as JSON.
	ErrSerialize = pkg.NewError("serialize environment value")
	// ErrPrevious is returned when the inherited environment cannot be
	// resolved.
	ErrPrevious = pkg.NewError("resolve inherited environment")
	// ErrIllegalState signals a key that is in neither the declared nor the
	// inherited environment. It indicates a bug in key enumeration.
	ErrIllegalState = pkg.NewError("reached an illegal state")
)

var (
	errEmptyHash      = errors.New("at least one variable is required")
	errEmptyAppendKey = errors.New("append names must not be empty")
	errInvalidKey     = errors.New(`names must match [\w-]+`)
	errNilValue       = errors.New("value is nil")
	errNotJSON        = errors.New("value is not JSON-serializable")
)
