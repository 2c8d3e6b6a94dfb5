package bench

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"devkit/cli/makectl/internal/cmdregistry"
	"devkit/cli/makectl/internal/config"
	"devkit/cli/makectl/internal/execx"
	"devkit/cli/makectl/internal/relay"
	"devkit/cli/makectl/internal/runner"
)

const Name = "bench"

// Register adds the bench command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register(Name, 0, handle)
}

func handle(ctx *cmdregistry.Context) error {
	stdout := execx.Shared(ctx.Stdout)

	// The read end must outlive Wait; only the relay drains it.
	pr, pw, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("bench: stderr pipe: %w", err)
	}
	defer pr.Close()

	spec := runner.Bench(ctx.Tool, stdout)
	spec.Stderr = pw
	proc, err := execx.Start(ctx.Ctx, spec)
	_ = pw.Close()
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	grace := ctx.Tool.RelayGrace
	if grace <= 0 {
		grace = config.DefaultRelayGrace
	}
	rl := relay.Start(pr, stdout)
	res := proc.Wait()
	lines, truncated, err := rl.Join(grace)

	entry := ctx.Log.WithFields(log.Fields{"code": res.Code, "lines": lines})
	if truncated {
		entry.WithField("grace", grace).Warn("benchmark stderr still open after exit; relay truncated")
	}
	entry.Debug("benchmarks finished")
	if err != nil {
		return fmt.Errorf("bench: relay stderr: %w", err)
	}
	return nil
}
