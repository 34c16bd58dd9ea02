package main

import (
	"fmt"
	"math/big"

	"github.com/urfave/cli/v2"

	"xdao.co/zklink/account"
	"xdao.co/zklink/keys"
)

// pubKeyHashArg parses the single "sync:" argument of c.
func pubKeyHashArg(c *cli.Context) (account.PubKeyHash, error) {
	arg, err := oneArg(c, "<sync:hex>")
	if err != nil {
		return account.PubKeyHash{}, err
	}
	return account.FromHex(arg)
}

func printLine(c *cli.Context, v any) error {
	_, err := fmt.Fprintln(c.App.Writer, v)
	return err
}

var pubKeyHashCommand = &cli.Command{
	Name:  "pubkey-hash",
	Usage: "derive and inspect PubKeyHash values",
	Subcommands: []*cli.Command{
		{
			Name:      "from-seed",
			Usage:     "PubKeyHash of the key derived from a 32-byte seed",
			ArgsUsage: "<64hex>",
			Action: func(c *cli.Context) error {
				arg, err := oneArg(c, "<64hex>")
				if err != nil {
					return err
				}
				seed, err := keys.ParseSeedHex(arg)
				if err != nil {
					return err
				}
				h, err := keys.PubKeyHashFromSeed(seed)
				if err != nil {
					return err
				}
				return printLine(c, h)
			},
		},
		{
			Name:      "from-pubkey",
			Usage:     "PubKeyHash of a compressed public key",
			ArgsUsage: "<0xhex>",
			Action: func(c *cli.Context) error {
				arg, err := oneArg(c, "<0xhex>")
				if err != nil {
					return err
				}
				pk, err := keys.ImportPublicKey(arg)
				if err != nil {
					return err
				}
				return printLine(c, account.FromPublicKey(pk))
			},
		},
		{
			Name:      "from-hex",
			Usage:     "validate and normalize a PubKeyHash",
			ArgsUsage: "<sync:hex>",
			Action: func(c *cli.Context) error {
				h, err := pubKeyHashArg(c)
				if err != nil {
					return err
				}
				return printLine(c, h)
			},
		},
		{
			Name:      "fr",
			Usage:     "the PubKeyHash as a decimal field element",
			ArgsUsage: "<sync:hex>",
			Action: func(c *cli.Context) error {
				h, err := pubKeyHashArg(c)
				if err != nil {
					return err
				}
				e := h.Fr()
				return printLine(c, e.BigInt(new(big.Int)).String())
			},
		},
		{
			Name:      "keccak",
			Usage:     "Keccak-256 of the PubKeyHash bytes",
			ArgsUsage: "<sync:hex>",
			Action: func(c *cli.Context) error {
				h, err := pubKeyHashArg(c)
				if err != nil {
					return err
				}
				return printLine(c, h.Keccak256())
			},
		},
	},
}
