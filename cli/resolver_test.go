package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		flag string
		want any
	}{
		{"hyphen", "config:\n  log-level: debug\n", "log-level", "debug"},
		{"underscore", "config:\n  log_level: debug\n", "log-level", "debug"},
		{"bool", "config:\n  log-pretty: false\n", "log-pretty", false},
		{"number", "config:\n  retries: 3\n", "retries", "3"},
		{"float", "config:\n  ratio: 0.5\n", "ratio", "0.5"},
		{"missing", "config:\n  other: x\n", "log-level", nil},
		{"no section", "log-level: debug\n", "log-level", nil},
		{"invalid", "config: [\n", "log-level", nil},
		{"empty", "", "log-level", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolve("config")(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}

			got, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}
}
