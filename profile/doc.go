// Package profile provides optional runtime profiling for the fdl command.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), every operation is a no-op
// with zero runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to retrieve
// the list programmatically.
//
// Typical usage:
//
//	cfg := profile.Config(func() (string, string, bool) {
//		return "cpu", "/tmp/profiles", true
//	})
//	ctrl := cfg.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the mode (for example, cpu.pprof). Analyze them with:
//
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
