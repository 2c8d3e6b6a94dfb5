// Package runner centralizes the build tool invocations makectl issues.
//
// Handlers describe what they want (a profile build, a benchmark run) and
// runner turns that into an execx.Spec with the configured binary and working
// directory, so the argument vectors live in one place.
package runner
