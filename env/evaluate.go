package env

import (
	"encoding/json"
	"log/slog"
)

// Evaluate resolves every value of h to a string.
//
// Deferred values are called with ctx. A resolved value is kept when it is a
// string and rendered as JSON text otherwise. h is not modified.
func Evaluate(h Hash, ctx Context) (map[string]string, error) {
	out := make(map[string]string, len(h))

	for _, k := range h.Keys() {
		v := h[k]
		if isNil(v) {
			return nil, ErrValidation.With(slog.String("key", k)).
				Wrap(errNilValue)
		}

		resolved, err := v.resolve(ctx)
		if err != nil {
			return nil, ErrEvaluate.With(slog.String("key", k)).Wrap(err)
		}

		text, err := stringify(resolved)
		if err != nil {
			return nil, ErrSerialize.With(slog.String("key", k)).Wrap(err)
		}

		out[k] = text
	}

	return out, nil
}

func isNil(v Value) bool {
	if v == nil {
		return true
	}

	d, ok := v.(Deferred)

	return ok && d == nil
}

func stringify(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
