package cmd

import "github.com/ardnew/envlayer/pkg"

var (
	// ErrResolve is returned when a stack file cannot be loaded or resolved.
	ErrResolve = pkg.NewError("resolve stack")
	// ErrMarshal is returned when an environment cannot be encoded.
	ErrMarshal = pkg.NewError("marshal environment")
	// ErrUnknownKey is returned by get for a variable no layer declares.
	ErrUnknownKey = pkg.NewError("unknown variable")
	// ErrWriteConfig is returned when init cannot write the configuration file.
	ErrWriteConfig = pkg.NewError("write configuration file")
	// ErrFileExists is returned by init when the file exists and --force is
	// not given.
	ErrFileExists = pkg.NewError("file exists (use --force to overwrite)")
)
