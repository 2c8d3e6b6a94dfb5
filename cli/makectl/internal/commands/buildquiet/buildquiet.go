package buildquiet

import (
	"bytes"
	"fmt"

	log "github.com/sirupsen/logrus"

	"devkit/cli/makectl/internal/cmdregistry"
	"devkit/cli/makectl/internal/execx"
	"devkit/cli/makectl/internal/runner"
	"devkit/cli/makectl/internal/status"
)

const Name = "build_quiet"

// Register adds the build_quiet command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register(Name, 1, handle)
}

func handle(ctx *cmdregistry.Context) error {
	profile := ctx.Args[0]
	stdout := execx.Shared(ctx.Stdout)
	out := status.New(stdout)

	var stderr bytes.Buffer
	spec := runner.Build(ctx.Tool, profile, stdout)
	spec.Stderr = &stderr
	proc, err := execx.Start(ctx.Ctx, spec)
	if err != nil {
		return fmt.Errorf("build %s: %w", profile, err)
	}
	if err := out.Info("building %s", profile); err != nil {
		_ = proc.Wait()
		return fmt.Errorf("build %s: %w", profile, err)
	}

	res := proc.Wait()
	ctx.Log.WithFields(log.Fields{"profile": profile, "code": res.Code}).Debug("build finished")
	if res.Code != 0 {
		if err := out.Failure("cargo build failed:"); err != nil {
			return fmt.Errorf("build %s: %w", profile, err)
		}
		if err := out.Block(stderr.Bytes()); err != nil {
			return fmt.Errorf("build %s: write tool output: %w", profile, err)
		}
		return nil
	}
	if err := out.Success("all good (:"); err != nil {
		return fmt.Errorf("build %s: %w", profile, err)
	}
	return nil
}
