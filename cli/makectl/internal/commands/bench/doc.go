// Package bench implements the "bench" command: it runs the benchmark suite
// without plots and relays the harness's stderr to stdout as it is produced.
package bench
