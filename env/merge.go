package env

import (
	"log/slog"

	"github.com/ardnew/mung"
)

// rule identifies which case of the merge produced a value.
type rule int

const (
	ruleJoinPrevious rule = iota + 1 // current+sep+previous
	ruleJoinBase                     // current+sep+base
	ruleOverride                     // current
	ruleInherit                      // previous
)

func (r rule) String() string {
	switch r {
	case ruleJoinPrevious:
		return "join-previous"
	case ruleJoinBase:
		return "join-base"
	case ruleOverride:
		return "override"
	case ruleInherit:
		return "inherit"
	default:
		return "illegal"
	}
}

// joinFunc joins a declared value with the value it extends.
type joinFunc func(current, sep, existing string) string

func concat(current, sep, existing string) string {
	return current + sep + existing
}

// compact joins the two lists with mung, which rebuilds the result from the
// individual items of both sides.
func compact(current, sep, existing string) string {
	return mung.Make(
		mung.WithSubjectItems(existing),
		mung.WithDelim(sep),
		mung.WithPrefixItems(current),
	).String()
}

// merger resolves one variable at a time.
type merger struct {
	delimiters map[string]string
	base       map[string]string
	join       joinFunc
}

// mergeKey returns the merged value of k. The cases are checked in order and
// the first match wins.
func (m merger) mergeKey(
	k string,
	current, previous map[string]string,
) (string, rule, error) {
	cur, inCurrent := current[k]
	prev, inPrevious := previous[k]
	sep, joined := m.delimiters[k]
	joined = joined && sep != ""

	switch {
	case inCurrent && joined && inPrevious:
		return m.join(cur, sep, prev), ruleJoinPrevious, nil

	case inCurrent && joined:
		if base, inBase := m.base[k]; inBase {
			return m.join(cur, sep, base), ruleJoinBase, nil
		}

		return cur, ruleOverride, nil

	case inCurrent:
		return cur, ruleOverride, nil

	case inPrevious:
		return prev, ruleInherit, nil

	default:
		return "", 0, ErrIllegalState.With(slog.String("key", k))
	}
}
