package env

import "runtime"

// PlatformDelimiter returns the list separator conventionally used by
// variables such as PATH on the platform named goos.
func PlatformDelimiter(goos string) string {
	if goos == "windows" {
		return ";"
	}

	return ":"
}

// DefaultPlatform is the platform delimiters are chosen for unless
// overridden with [WithPlatform].
//
//nolint:gochecknoglobals
var DefaultPlatform = runtime.GOOS

// Append selects the variables whose values are joined across layers rather
// than overridden. It is either [AppendKeys] or [AppendMap].
type Append interface {
	delimiters(platformDefault string) map[string]string
}

// AppendKeys joins each named variable with the platform delimiter.
type AppendKeys []string

func (a AppendKeys) delimiters(def string) map[string]string {
	out := make(map[string]string, len(a))

	for _, k := range a {
		if def != "" {
			out[k] = def
		}
	}

	return out
}

// Delimiter configures how one variable of an [AppendMap] is joined.
// The zero value disables joining.
type Delimiter struct {
	sep      string
	enabled  bool
	verbatim bool
}

// On joins with the platform delimiter.
func On() Delimiter { return Delimiter{enabled: true} }

// Off disables joining; the variable is overridden.
func Off() Delimiter { return Delimiter{} }

// Sep joins with sep verbatim. An empty sep disables joining.
func Sep(sep string) Delimiter {
	return Delimiter{sep: sep, enabled: true, verbatim: true}
}

// Bool returns [On] for true and [Off] for false.
func Bool(enabled bool) Delimiter {
	if enabled {
		return On()
	}

	return Off()
}

// resolve returns the separator to use, or "" if the variable is not joined.
func (d Delimiter) resolve(def string) string {
	switch {
	case !d.enabled:
		return ""
	case d.verbatim:
		return d.sep
	default:
		return def
	}
}

// String describes the delimiter.
func (d Delimiter) String() string {
	switch {
	case !d.enabled:
		return "false"
	case d.verbatim:
		return "\"" + d.sep + "\""
	default:
		return "true"
	}
}

// AppendMap configures joining per variable.
type AppendMap map[string]Delimiter

func (a AppendMap) delimiters(def string) map[string]string {
	out := make(map[string]string, len(a))

	for k, d := range a {
		if sep := d.resolve(def); sep != "" {
			out[k] = sep
		}
	}

	return out
}

// ResolveDelimiters returns the separator for every variable spec joins.
// Variables that are not joined are absent from the result.
// A nil spec joins nothing.
func ResolveDelimiters(spec Append, platformDefault string) map[string]string {
	if spec == nil {
		return map[string]string{}
	}

	return spec.delimiters(platformDefault)
}
