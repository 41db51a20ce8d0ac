package cmd

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/raphi011/filebatch/internal/log"
)

// ErrNoCommand is returned when the command line is empty.
var ErrNoCommand = errors.New("no command given")

// Interactive runs name attached to the terminal and waits for it to exit.
func Interactive(ctx context.Context, dir, name string, args ...string) error {
	c := command(ctx, dir, name, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// Split breaks a command line such as "code --wait" into the program and
// its arguments. Quoting is not supported.
func Split(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, ErrNoCommand
	}
	return fields[0], fields[1:], nil
}

func command(ctx context.Context, dir, name string, args ...string) *exec.Cmd {
	log.FromContext(ctx).Debug("exec", "cmd", name, "args", strings.Join(args, " "), "dir", dir)
	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	return c
}
