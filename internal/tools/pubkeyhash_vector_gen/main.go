package main

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"xdao.co/zklink/account"
	"xdao.co/zklink/keys"
	"xdao.co/zklink/zkcrypto"
)

func mustSeed(seedByte byte) []byte {
	seed := make([]byte, zkcrypto.SeedSize)
	for i := range seed {
		seed[i] = seedByte
	}
	return seed
}

// Prints seed -> public key -> PubKeyHash vectors for pinning in tests.
func main() {
	for _, b := range []byte{0x01, 0xA1, 0xFF} {
		seed := mustSeed(b)
		sk, err := keys.KeyFromSeed(seed)
		if err != nil {
			panic(err)
		}
		pk := zkcrypto.PublicKeyFromPrivate(sk)
		h := account.FromPublicKey(pk)
		e := h.Fr()

		fmt.Printf("SEED=%s\n", hex.EncodeToString(seed))
		fmt.Printf("PUBKEY=%s\n", keys.ExportPublicKey(pk))
		fmt.Printf("PUBKEY_HASH=%s\n", h)
		fmt.Printf("FR=%s\n", e.BigInt(new(big.Int)))
		fmt.Printf("KECCAK=%s\n", h.Keccak256())
		fmt.Println()
	}
}
