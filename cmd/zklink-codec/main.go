package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"xdao.co/zklink/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code: 0 on
// success, 2 on usage errors, 1 on anything else.
func run(args []string, out io.Writer, errOut io.Writer) int {
	app := newApp(out, errOut)
	err := app.Run(append([]string{app.Name}, args...))
	if err == nil {
		return 0
	}
	fmt.Fprintln(errOut, err)
	var missing cli.RequiredFlagsErr
	if errors.As(err, &missing) {
		return 2
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	log.Debug().Err(err).Strs("args", args).Msg("command failed")
	return 1
}

func newApp(out io.Writer, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:  "zklink-codec",
		Usage: "encode and decode zklink identities, amounts and chain config",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "keys-dir",
				Usage: "key store directory (default ~/.zklink/keys)",
			},
		},
		Commands: []*cli.Command{
			hexCommand,
			decimalCommand,
			pubKeyHashCommand,
			keyCommand,
			configCommand,
		},
		Writer:    out,
		ErrWriter: errOut,
		// errors are reported by run; keep cli from calling os.Exit.
		ExitErrHandler:  func(*cli.Context, error) {},
		HideHelpCommand: true,
		Action:          unknownCommand,
		OnUsageError:    onUsageError,
	}
	setUsageHandlers(app.Commands)
	return app
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return usageError("%v", err)
}

// unknownCommand runs when no (sub)command matched the first argument.
func unknownCommand(c *cli.Context) error {
	if c.Args().Present() {
		return usageError("unknown command %q", c.Args().First())
	}
	if c.Command != nil && len(c.Command.Subcommands) > 0 {
		return cli.ShowSubcommandHelp(c)
	}
	return cli.ShowAppHelp(c)
}

func setUsageHandlers(cmds []*cli.Command) {
	for _, cmd := range cmds {
		cmd.OnUsageError = onUsageError
		if len(cmd.Subcommands) > 0 {
			if cmd.Action == nil {
				cmd.Action = unknownCommand
			}
			setUsageHandlers(cmd.Subcommands)
		}
	}
}

func usageError(format string, args ...any) error {
	return cli.Exit(fmt.Sprintf(format, args...), 2)
}

// oneArg returns the single positional argument of c.
func oneArg(c *cli.Context, what string) (string, error) {
	if c.NArg() != 1 {
		return "", usageError("usage: %s %s", c.Command.FullName(), what)
	}
	return c.Args().First(), nil
}
