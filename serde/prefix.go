package serde

// Prefix selects the literal tag written in front of a hex payload.
//
// Implementations are zero-size tag types so the policy is fixed at compile
// time through a type parameter, e.g. HexBytes[SyncTx].
type Prefix interface {
	Prefix() string
}

// ZeroX is the generic "0x" policy.
type ZeroX struct{}

func (ZeroX) Prefix() string { return "0x" }

// Sync tags account key hashes.
type Sync struct{}

func (Sync) Prefix() string { return "sync:" }

// SyncBlock tags block identifiers.
type SyncBlock struct{}

func (SyncBlock) Prefix() string { return "sync-bl:" }

// SyncTx tags transaction identifiers.
type SyncTx struct{}

func (SyncTx) Prefix() string { return "sync-tx:" }

// PrefixOf returns the literal prefix of policy P.
func PrefixOf[P Prefix]() string {
	var p P
	return p.Prefix()
}

// Prefixes lists the literals of every policy defined in this package.
func Prefixes() []string {
	return []string{
		PrefixOf[ZeroX](),
		PrefixOf[Sync](),
		PrefixOf[SyncBlock](),
		PrefixOf[SyncTx](),
	}
}
