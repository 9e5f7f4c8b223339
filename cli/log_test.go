package cli

import (
	"bytes"
	"testing"

	"github.com/ardnew/envlayer/log"
)

func TestLogConfigScan(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		level  logLevel
		format logFormat
		pretty bool
		caller bool
	}{
		{
			name:   "assigned",
			args:   []string{"--log-level=debug", "--log-format=text"},
			level:  "debug",
			format: "text",
			pretty: true,
		},
		{
			name:   "separate values",
			args:   []string{"eval", "--log-level", "warn", "--log-format", "json"},
			level:  "warn",
			format: "json",
			pretty: true,
		},
		{
			name:   "booleans",
			args:   []string{"--no-log-pretty", "--log-caller"},
			caller: true,
		},
		{
			name:   "explicit booleans",
			args:   []string{"--log-pretty=false", "--no-log-caller=false"},
			caller: true,
		},
		{
			name:   "unrelated",
			args:   []string{"--file", "--log", "x"},
			pretty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := log.SetDefault(log.Make(&bytes.Buffer{}))
			t.Cleanup(func() { log.SetDefault(prev) })

			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f.Level != tt.level || f.Format != tt.format {
				t.Errorf("scan() level, format = %q, %q, want %q, %q",
					f.Level, f.Format, tt.level, tt.format)
			}

			if f.Pretty != tt.pretty || f.Caller != tt.caller {
				t.Errorf("scan() pretty, caller = %v, %v, want %v, %v",
					f.Pretty, f.Caller, tt.pretty, tt.caller)
			}
		})
	}
}

func TestScanAppliesLevel(t *testing.T) {
	prev := log.SetDefault(log.Make(&bytes.Buffer{}))
	t.Cleanup(func() { log.SetDefault(prev) })

	var f logConfig

	f.scan([]string{"--log-level=trace"})

	if got := log.Default().Level(); got != log.LevelTrace {
		t.Errorf("level = %v, want %v", got, log.LevelTrace)
	}
}
