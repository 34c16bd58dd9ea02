// Package config aggregates the per-chain layer-1 settings of a zklink
// deployment: chain parameters, the zklink contract address and client
// connection parameters for every configured chain.
//
// Configuration is read from a TOML file. The codec types from serde and
// account parse the address, hash and amount fields.
package config
