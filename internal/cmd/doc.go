// Package cmd runs external commands attached to the terminal.
//
// Interactive hands stdin, stdout and stderr to the command, for editors
// and hook commands. A cancelled context is reported as ctx.Err() rather
// than the signal exit of the killed process.
//
// # Usage
//
//	if err := cmd.Interactive(ctx, dir, "vim", "Button.tsx"); err != nil {
//	    return fmt.Errorf("open editor: %w", err)
//	}
//
// Every command is logged at debug level through the context logger.
package cmd
