package main

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"xdao.co/zklink/serde"
)

var prefixFlag = &cli.StringFlag{
	Name:  "prefix",
	Usage: "one of " + strings.Join(serde.Prefixes(), ", "),
	Value: serde.PrefixOf[serde.ZeroX](),
}

func checkedPrefix(c *cli.Context) (string, error) {
	p := c.String(prefixFlag.Name)
	if !slices.Contains(serde.Prefixes(), p) {
		return "", usageError("unknown --prefix %q", p)
	}
	return p, nil
}

var hexCommand = &cli.Command{
	Name:  "hex",
	Usage: "prefixed hex encoding",
	Subcommands: []*cli.Command{
		{
			Name:      "encode",
			Usage:     "prefix raw hex bytes",
			ArgsUsage: "<hex>",
			Flags:     []cli.Flag{prefixFlag},
			Action: func(c *cli.Context) error {
				prefix, err := checkedPrefix(c)
				if err != nil {
					return err
				}
				arg, err := oneArg(c, "<hex>")
				if err != nil {
					return err
				}
				b, err := hex.DecodeString(arg)
				if err != nil {
					return fmt.Errorf("invalid hex: %w", err)
				}
				_, err = fmt.Fprintln(c.App.Writer, serde.EncodeHex(prefix, b))
				return err
			},
		},
		{
			Name:      "decode",
			Usage:     "strip and check the prefix, print raw hex",
			ArgsUsage: "<prefixed-hex>",
			Flags:     []cli.Flag{prefixFlag},
			Action: func(c *cli.Context) error {
				prefix, err := checkedPrefix(c)
				if err != nil {
					return err
				}
				arg, err := oneArg(c, "<prefixed-hex>")
				if err != nil {
					return err
				}
				b, err := serde.DecodeHex(prefix, arg)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(b))
				return err
			},
		},
	},
}

var decimalCommand = &cli.Command{
	Name:  "decimal",
	Usage: "decimal big integer encoding",
	Subcommands: []*cli.Command{
		{
			Name:      "normalize",
			Usage:     "print the canonical form of each value",
			ArgsUsage: "<value>...",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return usageError("usage: %s <value>...", c.Command.FullName())
				}
				vs, err := serde.DecodeBigUints(c.Args().Slice())
				if err != nil {
					return err
				}
				for _, s := range serde.EncodeBigUints(vs) {
					if _, err := fmt.Fprintln(c.App.Writer, s); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name:      "ratio",
			Usage:     "print num/den as a decimal string",
			ArgsUsage: "<num> <den>",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return usageError("usage: %s <num> <den>", c.Command.FullName())
				}
				num, err := serde.DecodeBigUint(c.Args().Get(0))
				if err != nil {
					return fmt.Errorf("num: %w", err)
				}
				den, err := serde.DecodeBigUint(c.Args().Get(1))
				if err != nil {
					return fmt.Errorf("den: %w", err)
				}
				r, err := serde.NewUnsignedRatio(num, den)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.App.Writer, r.String())
				return err
			},
		},
	},
}
