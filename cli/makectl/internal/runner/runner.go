package runner

import (
	"io"

	"devkit/cli/makectl/internal/config"
	"devkit/cli/makectl/internal/execx"
)

// NoPlotFlag is forwarded to the benchmark harness to skip plot generation.
const NoPlotFlag = "--noplot"

// BuildArgs returns the argument vector for a build of the named profile.
func BuildArgs(profile string) []string {
	return []string{"rustc", "--" + profile}
}

// BenchArgs returns the argument vector for a benchmark run.
func BenchArgs() []string {
	return []string{"bench", "--", NoPlotFlag}
}

// Build describes a profile build whose stdout goes to stdout.
func Build(tool config.Tool, profile string, stdout io.Writer) execx.Spec {
	return spec(tool, BuildArgs(profile), stdout)
}

// Bench describes a benchmark run whose stdout goes to stdout.
func Bench(tool config.Tool, stdout io.Writer) execx.Spec {
	return spec(tool, BenchArgs(), stdout)
}

func spec(tool config.Tool, args []string, stdout io.Writer) execx.Spec {
	name := tool.Binary
	if name == "" {
		name = config.DefaultTool
	}
	return execx.Spec{Name: name, Args: args, Dir: tool.Dir, Stdout: stdout}
}
