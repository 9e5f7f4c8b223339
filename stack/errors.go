package stack

import (
	"errors"

	"github.com/ardnew/envlayer/pkg"
)

var (
	// ErrDecode is returned when a stack file cannot be read or has an
	// unexpected shape.
	ErrDecode = pkg.NewError("decode stack")
	// ErrExpr is returned when an expression fails to compile.
	ErrExpr = pkg.NewError("compile expression")
)

var (
	errNoLayers    = errors.New("at least one layer is required")
	errAppendShape = errors.New("append must be a list of names or a mapping of names to bool or string")
	errExprSource  = errors.New("expr must be a non-empty string")
)
