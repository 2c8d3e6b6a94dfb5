package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Result struct {
	Code int
	Err  error
}

// Spec describes one subprocess invocation.
type Spec struct {
	Name   string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

func (s Spec) String() string {
	return strings.Join(append([]string{s.Name}, s.Args...), " ")
}

// Process is a started subprocess.
type Process struct {
	ctx context.Context
	cmd *exec.Cmd
}

// Start launches spec without waiting for it.
func Start(ctx context.Context, spec Spec) (*Process, error) {
	log.WithFields(log.Fields{"tool": spec.Name, "args": spec.Args, "dir": spec.Dir}).Debug("+ " + spec.String())
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", spec.Name, err)
	}
	return &Process{ctx: ctx, cmd: cmd}, nil
}

// Wait blocks until the process exits and reports its exit code.
func (p *Process) Wait() Result {
	err := p.cmd.Wait()
	return Result{Code: exitCode(p.ctx, err), Err: err}
}

func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	if ctx.Err() == context.DeadlineExceeded {
		return 124
	}
	return 1
}
