// Package execx runs external commands with a deadline.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes name with args and gives up after timeout.
func Run(timeout time.Duration, name string, args ...string) (Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return RunContext(ctx, name, args...)
}

// RunContext executes name with args until it exits or ctx is done.
// A non-zero exit is an error; Result still carries the captured output.
func RunContext(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outb, errb bytes.Buffer
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	err := cmd.Run()
	res := Result{Stdout: outb.String(), Stderr: errb.String()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, fmt.Errorf("%s %v: %w", name, args, ctxErr)
	}
	if err == nil {
		return res, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		res.ExitCode = ee.ExitCode()
		return res, fmt.Errorf("%s %v: exit %d", name, args, res.ExitCode)
	}
	res.ExitCode = -1
	return res, fmt.Errorf("%s %v: %w", name, args, err)
}
