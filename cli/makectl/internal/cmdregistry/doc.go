// Package cmdregistry defines the static command table used by the makectl
// entrypoint. Each entry maps a command name to a handler and the exact number
// of positional arguments it accepts, so arity is checked from the table
// rather than by inspecting the handler.
package cmdregistry
