package env

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
)

var keyPattern = regexp.MustCompile(`^[\w-]+$`)

// ValidKey reports whether name may be declared.
func ValidKey(name string) bool { return keyPattern.MatchString(name) }

// Validate checks that h is a well-formed declaration: it must contain at
// least one variable, every name must match [\w-]+, and every value must be
// non-nil. Structured values must be JSON-serializable.
func Validate(h Hash) error {
	if len(h) == 0 {
		return ErrValidation.Wrap(errEmptyHash)
	}

	for _, k := range h.Keys() {
		if !ValidKey(k) {
			return ErrValidation.With(slog.String("key", k)).Wrap(errInvalidKey)
		}

		switch v := h[k].(type) {
		case nil:
			return ErrValidation.With(slog.String("key", k)).Wrap(errNilValue)

		case Deferred:
			if v == nil {
				return ErrValidation.With(slog.String("key", k)).Wrap(errNilValue)
			}

		case structured:
			if _, err := json.Marshal(v.v); err != nil {
				return ErrValidation.
					With(slog.String("key", k)).
					Wrap(fmt.Errorf("%w: %w", errNotJSON, err))
			}
		}
	}

	return nil
}

// ValidateAppend checks an append specification. Keys of an [AppendMap] must
// match [\w-]+; entries of [AppendKeys] only need to be non-empty.
func ValidateAppend(spec Append) error {
	switch a := spec.(type) {
	case AppendKeys:
		for _, k := range a {
			if k == "" {
				return ErrValidation.
					With(slog.String("append", k)).
					Wrap(errEmptyAppendKey)
			}
		}

	case AppendMap:
		for k := range a {
			if !ValidKey(k) {
				return ErrValidation.
					With(slog.String("append", k)).
					Wrap(errInvalidKey)
			}
		}
	}

	return nil
}
