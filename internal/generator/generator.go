package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Generator scaffolds an application named name inside dir. The generated
// tree is expected at dir/name.
type Generator interface {
	Generate(ctx context.Context, dir, name string) (*Outcome, error)
}

// Outcome captures the result of a generator invocation.
type Outcome struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Failed reports whether the generator exited non-zero.
func (o *Outcome) Failed() bool {
	return o.ExitCode != 0
}

// Command runs an executable from PATH as `<Name> <app-name>`.
type Command struct {
	Name string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommand returns a Command for the named executable.
func NewCommand(name string) *Command {
	return &Command{Name: name}
}

// Generate runs the executable with name as its only argument and dir as
// its working directory. A non-zero exit is reported in the Outcome, not as
// an error; a missing executable is an error.
func (c *Command) Generate(ctx context.Context, dir, name string) (*Outcome, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("generator %q not found on PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, name)
	cmd.Dir = dir

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	out := &Outcome{
		Command: c.Name,
		Stdout:  stdoutBuf.String(),
		Stderr:  stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, fmt.Errorf("running %s: %w", c.Name, ctxErr)
		}
		return out, fmt.Errorf("running %s: %w", c.Name, err)
	}

	return out, nil
}
