package config

import (
	"fmt"
	"strings"
	"time"

	"xdao.co/zklink/account"
	"xdao.co/zklink/serde"
)

// ChainID identifies a layer-1 chain inside zklink. Zero is reserved.
type ChainID uint8

// ChainType selects the address and transaction format of a layer-1 chain.
type ChainType string

const (
	ChainTypeEVM      ChainType = "EVM"
	ChainTypeStarkNet ChainType = "STARKNET"
)

func (t ChainType) String() string { return string(t) }

// AddressLen is the width of a contract address on chains of this type.
func (t ChainType) AddressLen() int {
	if t == ChainTypeStarkNet {
		return account.WideAddressLen
	}
	return account.EVMAddressLen
}

func (t *ChainType) UnmarshalText(text []byte) error {
	switch v := ChainType(strings.ToUpper(strings.TrimSpace(string(text)))); v {
	case ChainTypeEVM, ChainTypeStarkNet:
		*t = v
		return nil
	default:
		return fmt.Errorf("unknown chain type %q", string(text))
	}
}

type ChainConfig struct {
	ChainID   ChainID   `toml:"chain_id"`
	ChainType ChainType `toml:"chain_type"`
	Name      string    `toml:"name"`
	GasToken  string    `toml:"gas_token"`
}

type ContractConfig struct {
	Address       account.Address             `toml:"address"`
	DeployHeight  uint64                      `toml:"deploy_height"`
	GenesisTxHash serde.HexBytes[serde.ZeroX] `toml:"genesis_tx_hash"`
}

type ClientConfig struct {
	Web3URLs          []string      `toml:"web3_urls"`
	RequestTimeout    time.Duration `toml:"request_timeout"`
	MaxGasPrice       serde.BigUint `toml:"max_gas_price"`
	RequestsPerSecond uint32        `toml:"requests_per_second"`
}

// Layer1Config is everything zklink needs to talk to one layer-1 chain.
type Layer1Config struct {
	Chain    ChainConfig    `toml:"chain"`
	Contract ContractConfig `toml:"contract"`
	Client   ClientConfig   `toml:"client"`
}

func (c Layer1Config) validate() error {
	id := c.Chain.ChainID
	if id == 0 {
		return fmt.Errorf("chain id 0 is reserved")
	}
	if c.Chain.ChainType == "" {
		return fmt.Errorf("chain %d: missing chain_type", id)
	}
	if c.Contract.Address.IsZero() {
		return fmt.Errorf("chain %d: missing contract address", id)
	}
	if want := c.Chain.ChainType.AddressLen(); c.Contract.Address.Len() != want {
		return fmt.Errorf("chain %d: %w", id, serde.CheckLen("contract address", c.Contract.Address.Bytes(), want))
	}
	if len(c.Client.Web3URLs) == 0 {
		return fmt.Errorf("chain %d: no web3 urls", id)
	}
	return nil
}
