package env

import (
	"os"
	"strings"
)

// Environ converts "KEY=VALUE" entries to a map. Entries without "=" are
// ignored; later entries win.
func Environ(entries []string) map[string]string {
	out := make(map[string]string, len(entries))

	for _, entry := range entries {
		// Windows keeps per-drive working directories in keys like "=C:".
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			out[key] = value
		}
	}

	return out
}

// ProcessEnviron returns the environment of the current process.
func ProcessEnviron() map[string]string { return Environ(os.Environ()) }

// List converts env to sorted "KEY=VALUE" entries, the form expected by
// [os/exec.Cmd.Env].
func List(env map[string]string) []string {
	out := make([]string, 0, len(env))

	for _, k := range sortedKeys(env) {
		out = append(out, k+"="+env[k])
	}

	return out
}
