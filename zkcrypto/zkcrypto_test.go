package zkcrypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xdao.co/zklink/params"
	"xdao.co/zklink/serde"
)

func seed(b byte) []byte {
	s := make([]byte, SeedSize)
	for i := range s {
		s[i] = b + byte(i)
	}
	return s
}

func TestPrivateKeyFromSeed_Deterministic(t *testing.T) {
	a, err := PrivateKeyFromSeed(seed(1))
	require.NoError(t, err)
	b, err := PrivateKeyFromSeed(seed(1))
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())

	c, err := PrivateKeyFromSeed(seed(2))
	require.NoError(t, err)
	assert.NotEqual(t, a.Bytes(), c.Bytes())

	_, err = PrivateKeyFromSeed(make([]byte, SeedSize-1))
	assert.Error(t, err)
}

func TestGenerateKey_MatchesSeed(t *testing.T) {
	a, err := GenerateKey(bytes.NewReader(seed(3)))
	require.NoError(t, err)
	b, err := PrivateKeyFromSeed(seed(3))
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())

	_, err = GenerateKey(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestPublicKeyEncodings(t *testing.T) {
	sk, err := PrivateKeyFromSeed(seed(4))
	require.NoError(t, err)
	pk := PublicKeyFromPrivate(sk)

	raw := PublicKeyBytes(pk)
	require.Len(t, raw, 2*params.FrBytes)

	compressed := CompressPublicKey(pk)
	require.Len(t, compressed, CompressedPublicKeySize)
	back, err := ParsePublicKey(compressed)
	require.NoError(t, err)
	assert.Equal(t, raw, PublicKeyBytes(back))

	_, err = ParsePublicKey(compressed[:10])
	assert.Error(t, err)
}

func TestMiMCHasher(t *testing.T) {
	sk, err := PrivateKeyFromSeed(seed(5))
	require.NoError(t, err)
	pk := PublicKeyFromPrivate(sk)

	a, err := MiMCHasher{}.HashPubKey(pk)
	require.NoError(t, err)
	require.Len(t, a, params.FRAddressLen)
	b, err := DefaultHasher.HashPubKey(pk)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEqual(t, make([]byte, params.FRAddressLen), a)

	other, err := PrivateKeyFromSeed(seed(6))
	require.NoError(t, err)
	c, err := MiMCHasher{}.HashPubKey(PublicKeyFromPrivate(other))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = MiMCHasher{}.HashPubKey(nil)
	assert.Error(t, err)
}

func TestKeccak256_KnownVector(t *testing.T) {
	h := Keccak256()
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", h.Hex())
	assert.Equal(t, Keccak256([]byte("ab")), Keccak256([]byte("a"), []byte("b")))
}

func TestH256_Text(t *testing.T) {
	h := Keccak256([]byte("zklink"))
	text, err := h.MarshalText()
	require.NoError(t, err)

	var back H256
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, h, back)

	err = back.UnmarshalText([]byte("0x" + hex.EncodeToString(h[:31])))
	assert.True(t, serde.IsKind(err, serde.KindSizeMismatch))

	err = back.UnmarshalText([]byte("sync:" + hex.EncodeToString(h[:])))
	assert.True(t, serde.IsKind(err, serde.KindMissingPrefix))
}
