package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"xdao.co/zklink/config"
)

var configCommand = &cli.Command{
	Name:  "config",
	Usage: "inspect layer-1 chain configuration",
	Subcommands: []*cli.Command{
		{
			Name:      "contracts",
			Usage:     "print the zklink contract of every chain in file order",
			ArgsUsage: "<file.toml>",
			Action: func(c *cli.Context) error {
				path, err := oneArg(c, "<file.toml>")
				if err != nil {
					return err
				}
				m, err := config.Load(path)
				if err != nil {
					return err
				}
				contracts := m.Contracts()
				for _, id := range m.ChainIDs {
					if _, err := fmt.Fprintf(c.App.Writer, "%d %s\n", id, contracts[id]); err != nil {
						return err
					}
				}
				return nil
			},
		},
	},
}
