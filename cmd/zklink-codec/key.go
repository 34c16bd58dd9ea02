package main

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"xdao.co/zklink/keys"
	"xdao.co/zklink/serde"
	"xdao.co/zklink/zkcrypto"
)

func keyStore(c *cli.Context) (*keys.KeyStore, error) {
	return keys.CreateKeyStore(c.String("keys-dir"))
}

var (
	nameFlag = &cli.StringFlag{Name: "name", Usage: "key name", Required: true}
	roleFlag = &cli.StringFlag{Name: "role", Usage: "optional role of the key"}

	signerFlags = []cli.Flag{
		&cli.StringFlag{Name: "seed-hex", Usage: "32-byte seed as hex"},
		&cli.StringFlag{Name: "signer", Usage: "stored key name"},
		&cli.StringFlag{Name: "signer-role", Usage: "role under --signer"},
		&cli.StringFlag{Name: "key-file", Usage: "path to a seed file"},
	}
)

func loadSigner(c *cli.Context) (*zkcrypto.PrivateKey, error) {
	ks, err := keyStore(c)
	if err != nil {
		return nil, err
	}
	seed, err := ks.LoadSeed(c.String("seed-hex"), c.String("signer"), c.String("signer-role"), c.String("key-file"))
	if err != nil {
		return nil, err
	}
	return keys.KeyFromSeed(seed)
}

var keyCommand = &cli.Command{
	Name:  "key",
	Usage: "local key management",
	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "create a root key",
			Flags: []cli.Flag{
				nameFlag,
				&cli.StringFlag{Name: "seed-hex", Usage: "optional 32-byte seed for reproducible keys"},
				&cli.BoolFlag{Name: "force", Usage: "overwrite an existing key"},
			},
			Action: func(c *cli.Context) error {
				name := c.String("name")
				if err := keys.CheckKeyName(name); err != nil {
					return usageError("invalid --name: %v", err)
				}
				var seed []byte
				if s := c.String("seed-hex"); s != "" {
					var err error
					if seed, err = keys.ParseSeedHex(s); err != nil {
						return usageError("invalid --seed-hex: %v", err)
					}
				} else {
					seed = make([]byte, zkcrypto.SeedSize)
					if _, err := rand.Read(seed); err != nil {
						return fmt.Errorf("rand: %w", err)
					}
				}
				ks, err := keyStore(c)
				if err != nil {
					return err
				}
				h, path, err := ks.InitializeRootKey(name, seed, c.Bool("force"))
				if err != nil {
					return fmt.Errorf("write key: %w", err)
				}
				fmt.Fprintf(c.App.Writer, "Created root key: %s\n", h)
				fmt.Fprintf(c.App.Writer, "Stored at: %s\n", path)
				return nil
			},
		},
		{
			Name:  "derive",
			Usage: "derive a role key from a root key",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "from", Usage: "root key name", Required: true},
				&cli.StringFlag{Name: "role", Usage: "role identifier", Required: true},
				&cli.BoolFlag{Name: "force", Usage: "overwrite an existing key"},
			},
			Action: func(c *cli.Context) error {
				ks, err := keyStore(c)
				if err != nil {
					return err
				}
				h, path, err := ks.DeriveKeyFromRole(c.String("from"), c.String("role"), c.Bool("force"))
				if err != nil {
					return fmt.Errorf("derive role key: %w", err)
				}
				fmt.Fprintf(c.App.Writer, "Created role key: %s\n", h)
				fmt.Fprintf(c.App.Writer, "Stored at: %s\n", path)
				return nil
			},
		},
		{
			Name:  "list",
			Usage: "list stored root keys and their roles",
			Action: func(c *cli.Context) error {
				ks, err := keyStore(c)
				if err != nil {
					return err
				}
				entries, err := ks.ListKeys()
				if err != nil {
					return err
				}
				for _, e := range entries {
					line := e.Identifier + " " + e.PubKeyHash.String()
					if len(e.Permissions) > 0 {
						line += " roles=" + strings.Join(e.Permissions, ",")
					}
					if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name:  "export",
			Usage: "print the PubKeyHash of a stored key",
			Flags: []cli.Flag{nameFlag, roleFlag},
			Action: func(c *cli.Context) error {
				ks, err := keyStore(c)
				if err != nil {
					return err
				}
				h, err := ks.ExportPubKeyHash(c.String("name"), c.String("role"))
				if err != nil {
					return fmt.Errorf("export key: %w", err)
				}
				return printLine(c, h)
			},
		},
		{
			Name:  "pubkey",
			Usage: "print the compressed public key of a signer",
			Flags: signerFlags,
			Action: func(c *cli.Context) error {
				sk, err := loadSigner(c)
				if err != nil {
					return err
				}
				return printLine(c, keys.ExportPublicKey(zkcrypto.PublicKeyFromPrivate(sk)))
			},
		},
		{
			Name:      "sign",
			Usage:     "sign a message",
			ArgsUsage: "<message>",
			Flags:     signerFlags,
			Action: func(c *cli.Context) error {
				msg, err := oneArg(c, "<message>")
				if err != nil {
					return err
				}
				sk, err := loadSigner(c)
				if err != nil {
					return err
				}
				sig, err := keys.Sign([]byte(msg), sk)
				if err != nil {
					return err
				}
				return printLine(c, serde.EncodePrefixed[serde.ZeroX](sig))
			},
		},
		{
			Name:      "verify",
			Usage:     "verify a signature made by sign",
			ArgsUsage: "<message>",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "pubkey", Usage: "compressed public key as 0x hex", Required: true},
				&cli.StringFlag{Name: "sig", Usage: "signature as 0x hex", Required: true},
			},
			Action: func(c *cli.Context) error {
				msg, err := oneArg(c, "<message>")
				if err != nil {
					return err
				}
				pk, err := keys.ImportPublicKey(c.String("pubkey"))
				if err != nil {
					return err
				}
				sig, err := serde.DecodePrefixed[serde.ZeroX](c.String("sig"))
				if err != nil {
					return err
				}
				ok, err := keys.Verify([]byte(msg), sig, pk)
				if err != nil {
					return err
				}
				if !ok {
					return cli.Exit("signature does not verify", 1)
				}
				return printLine(c, "ok")
			},
		},
	},
}
