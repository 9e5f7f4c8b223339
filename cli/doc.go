// Package cli contains the command line interface for envlayer.
//
// # Usage
//
//	envlayer eval -f stack.yaml [--format native|json|yaml] [--no-base]
//	envlayer trace -f stack.yaml
//	envlayer get -f stack.yaml KEY
//	envlayer browse -f stack.yaml
//	envlayer init [--force]
//	envlayer version
//
// # Configuration
//
// Flag defaults are read from config.yaml in the configuration directory
// (see [pkg.ConfigDir]). The file holds a single mapping under the key
// "config" whose keys are flag names:
//
//	config:
//	  log-level: debug
//	  log-format: text
//
// Command-line flags override configuration values. Run "envlayer init" to
// write a file with the current values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Merge diagnostics are logged at debug level; per-variable merge decisions
// are logged when a command is given --debug.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
// The profiling flags are:
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
