package keys

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	"xdao.co/zklink/zkcrypto"
)

// messageElement maps an arbitrary message to the canonical bytes of one
// field element: keccak256(message) reduced modulo the field order.
func messageElement(message []byte) []byte {
	digest := zkcrypto.Keccak256(message)
	var e fr.Element
	e.SetBytes(digest[:])
	b := e.Bytes()
	return b[:]
}

// Sign returns an EdDSA signature over the field-reduced Keccak-256 of
// message, using MiMC as the signature hash.
func Sign(message []byte, sk *zkcrypto.PrivateKey) ([]byte, error) {
	if sk == nil {
		return nil, errors.New("missing private key")
	}
	return sk.Sign(messageElement(message), mimc.NewMiMC())
}

// Verify checks a signature produced by Sign.
func Verify(message, sig []byte, pk *zkcrypto.PublicKey) (bool, error) {
	if pk == nil {
		return false, errors.New("missing public key")
	}
	return pk.Verify(sig, messageElement(message), mimc.NewMiMC())
}
