// Package profile provides optional runtime profiling for envlayer.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// "pprof" build tag ([Tag]). Without the tag, [Modes] is empty and
// [Settings.Start] always returns a no-op.
//
//	p := profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/profiles"),
//	).Start()
//	defer p.Stop()
//
// Profile files are written to the selected directory with names matching
// the mode (e.g., cpu.pprof, mem.pprof) and can be inspected with
// "go tool pprof".
package profile
