// Package zkcrypto is the boundary to the cryptographic primitives the codec
// layer consumes but does not define.
//
// Keys are EdDSA keys on the twisted Edwards curve embedded in the BN254
// scalar field. The key hash is a SNARK-friendly MiMC digest of the public
// key coordinates, and on-chain facts use legacy Keccak-256.
//
// Everything here is deterministic: the same key always yields the same
// bytes on every platform.
package zkcrypto
