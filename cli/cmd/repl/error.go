package repl

import "github.com/ardnew/envlayer/pkg"

var ErrNoLayers = pkg.NewError("nothing to browse")
