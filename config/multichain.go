package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"xdao.co/zklink/account"
)

// MultiChainConfigs holds the configured chain ids in order and, index for
// index, their Layer1Config.
type MultiChainConfigs struct {
	ChainIDs     []ChainID
	ChainConfigs []Layer1Config
}

// NewMultiChainConfigs keeps the order of layers and validates the result.
func NewMultiChainConfigs(layers []Layer1Config) (*MultiChainConfigs, error) {
	m := &MultiChainConfigs{
		ChainIDs:     make([]ChainID, 0, len(layers)),
		ChainConfigs: make([]Layer1Config, 0, len(layers)),
	}
	for _, l := range layers {
		m.ChainIDs = append(m.ChainIDs, l.Chain.ChainID)
		m.ChainConfigs = append(m.ChainConfigs, l)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that both lists line up and every entry is usable.
func (m *MultiChainConfigs) Validate() error {
	if len(m.ChainIDs) != len(m.ChainConfigs) {
		return fmt.Errorf("config: %d chain ids but %d chain configs", len(m.ChainIDs), len(m.ChainConfigs))
	}
	seen := make(map[ChainID]bool, len(m.ChainIDs))
	for i, id := range m.ChainIDs {
		if seen[id] {
			return fmt.Errorf("config: duplicate chain id %d", id)
		}
		seen[id] = true
		c := m.ChainConfigs[i]
		if c.Chain.ChainID != id {
			return fmt.Errorf("config: index %d: chain id %d does not match config for chain %d", i, id, c.Chain.ChainID)
		}
		if err := c.validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Contracts maps every configured chain to its zklink contract address.
func (m *MultiChainConfigs) Contracts() map[ChainID]account.Address {
	out := make(map[ChainID]account.Address, len(m.ChainConfigs))
	for _, c := range m.ChainConfigs {
		out[c.Chain.ChainID] = c.Contract.Address
	}
	return out
}

// Layer1 returns the config of chain id.
func (m *MultiChainConfigs) Layer1(id ChainID) (Layer1Config, bool) {
	for i, cid := range m.ChainIDs {
		if cid == id {
			return m.ChainConfigs[i], true
		}
	}
	return Layer1Config{}, false
}

type fileConfig struct {
	ChainIDs []ChainID      `toml:"chain_ids"`
	Layer1   []Layer1Config `toml:"layer1"`
}

// Parse decodes a TOML document. chain_ids fixes the order; every listed id
// needs exactly one [[layer1]] table and unlisted tables are rejected.
func Parse(data []byte) (*MultiChainConfigs, error) {
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}

	byID := make(map[ChainID]Layer1Config, len(fc.Layer1))
	for _, l := range fc.Layer1 {
		if _, dup := byID[l.Chain.ChainID]; dup {
			return nil, fmt.Errorf("config: duplicate [[layer1]] for chain %d", l.Chain.ChainID)
		}
		byID[l.Chain.ChainID] = l
	}
	if len(byID) != len(fc.ChainIDs) {
		return nil, fmt.Errorf("config: %d chain ids but %d [[layer1]] tables", len(fc.ChainIDs), len(byID))
	}

	layers := make([]Layer1Config, 0, len(fc.ChainIDs))
	for _, id := range fc.ChainIDs {
		l, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("config: no [[layer1]] table for chain %d", id)
		}
		layers = append(layers, l)
	}
	return NewMultiChainConfigs(layers)
}

// Load reads and parses a TOML file.
func Load(path string) (*MultiChainConfigs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("chains", len(m.ChainIDs)).Msg("loaded layer1 configs")
	return m, nil
}
