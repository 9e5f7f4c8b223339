package layer

import "github.com/ardnew/envlayer/pkg"

var (
	// ErrNotInLayer is returned by operations that must run inside a layer
	// scope but were invoked outside of one.
	ErrNotInLayer = pkg.NewError("not inside a layer")
	// ErrNotInOperation is returned by operations that must run inside an
	// operation scope but were invoked outside of one.
	ErrNotInOperation = pkg.NewError("not inside an operation")
)
