package keys

import (
	"fmt"

	"xdao.co/zklink/serde"
	"xdao.co/zklink/zkcrypto"
)

// ExportPublicKey encodes the compressed public key as "0x"-prefixed hex.
func ExportPublicKey(pk *zkcrypto.PublicKey) string {
	return serde.EncodePrefixed[serde.ZeroX](zkcrypto.CompressPublicKey(pk))
}

// ImportPublicKey decodes the output of ExportPublicKey.
func ImportPublicKey(s string) (*zkcrypto.PublicKey, error) {
	b, err := serde.DecodePrefixed[serde.ZeroX](s)
	if err != nil {
		return nil, err
	}
	pk, err := zkcrypto.ParsePublicKey(b)
	if err != nil {
		return nil, fmt.Errorf("import public key: %w", err)
	}
	return pk, nil
}
