// Package keys provides local key helpers for zklink account owners.
//
// API stability:
//
// Stable (SemVer-protected):
//   - Pure, deterministic primitives: role-seed derivation, seed-to-key and
//     seed-to-PubKeyHash derivation, and message signing.
//
// Experimental:
//   - Filesystem-backed key storage (KeyStore and related functions).
//     These are local-first utilities and are not part of the protocol contract.
package keys
