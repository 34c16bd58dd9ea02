// Package params holds the protocol-wide constants shared by the codec,
// account and crypto packages.
package params

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FRAddressLen is the width in bytes of a PubKeyHash.
//
// It must stay strictly below fr.Bytes so every PubKeyHash maps into the field.
const FRAddressLen = 20

// FrBytes is the canonical byte width of a field element.
const FrBytes = fr.Bytes

// FieldModulus returns a copy of the scalar field modulus of the proof system.
func FieldModulus() *big.Int {
	return fr.Modulus()
}
