package account

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xdao.co/zklink/params"
	"xdao.co/zklink/serde"
	"xdao.co/zklink/zkcrypto"
)

const zeroHex = "sync:0000000000000000000000000000000000000000"

type deterministicReader struct{ b byte }

func (r *deterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
		r.b++
	}
	return len(p), nil
}

type fixedHasher struct {
	out []byte
	err error
}

func (f fixedHasher) HashPubKey(*zkcrypto.PublicKey) ([]byte, error) {
	return append([]byte(nil), f.out...), f.err
}

func mustKey(t *testing.T, start byte) *zkcrypto.PrivateKey {
	t.Helper()
	sk, err := zkcrypto.GenerateKey(&deterministicReader{b: start})
	require.NoError(t, err)
	return sk
}

func TestZero_Hex(t *testing.T) {
	assert.Equal(t, "sync:"+strings.Repeat("00", params.FRAddressLen), Zero().Hex())
	assert.Equal(t, zeroHex, Zero().Hex())
	assert.True(t, Zero().IsZero())
}

func TestFromHex_Zero(t *testing.T) {
	h, err := FromHex(zeroHex)
	require.NoError(t, err)
	assert.Equal(t, Zero(), h)
	assert.Equal(t, zeroHex, h.Hex())
}

func TestFromBytes_SizeEnforced(t *testing.T) {
	for _, n := range []int{0, 1, params.FRAddressLen - 1, params.FRAddressLen + 1} {
		_, err := FromBytes(make([]byte, n))
		require.Error(t, err, "len=%d", n)
		assert.True(t, serde.IsKind(err, serde.KindSizeMismatch), "len=%d err=%v", n, err)
	}
}

func TestFromBytes_Verbatim(t *testing.T) {
	raw := make([]byte, params.FRAddressLen)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	h, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, h.Bytes())
	assert.Equal(t, "sync:0102030405060708090a0b0c0d0e0f1011121314", h.Hex())

	raw[0] = 0xff
	assert.Equal(t, byte(1), h.Data[0], "FromBytes must copy")
}

func TestFromHex_ErrorKinds(t *testing.T) {
	cases := []struct {
		input string
		kind  serde.Kind
	}{
		{"0x0000000000000000000000000000000000000000", serde.KindMissingPrefix},
		{"sync-tx:0000000000000000000000000000000000000000", serde.KindMissingPrefix},
		{"0000000000000000000000000000000000000000", serde.KindMissingPrefix},
		{"sync:000000000000000000000000000000000000000", serde.KindInvalidHex},
		{"sync:zz00000000000000000000000000000000000000", serde.KindInvalidHex},
		{"sync:00", serde.KindSizeMismatch},
		{"sync:", serde.KindSizeMismatch},
		{"sync:000000000000000000000000000000000000000000", serde.KindSizeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := FromHex(tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.kind, serde.KindOf(err))
		})
	}
}

func TestFromPublicKey_ReversesHasherOutput(t *testing.T) {
	raw := make([]byte, params.FRAddressLen)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	sk := mustKey(t, 0)
	h := FromPublicKeyWith(fixedHasher{out: raw}, zkcrypto.PublicKeyFromPrivate(sk))
	assert.Equal(t, "sync:14131211100f0e0d0c0b0a090807060504030201", h.Hex())

	direct, err := FromBytes(raw)
	require.NoError(t, err)
	assert.NotEqual(t, direct, h)
}

func TestFromPublicKey_HasherFailureIsFatal(t *testing.T) {
	pk := zkcrypto.PublicKeyFromPrivate(mustKey(t, 0))
	assert.Panics(t, func() {
		FromPublicKeyWith(fixedHasher{err: errors.New("boom")}, pk)
	})
	assert.Panics(t, func() {
		FromPublicKeyWith(fixedHasher{out: make([]byte, params.FRAddressLen-1)}, pk)
	})
}

func TestFromPublicKey_MatchesDefaultHasher(t *testing.T) {
	pk := zkcrypto.PublicKeyFromPrivate(mustKey(t, 7))
	raw, err := zkcrypto.DefaultHasher.HashPubKey(pk)
	require.NoError(t, err)
	require.Len(t, raw, params.FRAddressLen)

	h := FromPublicKey(pk)
	for i := range raw {
		require.Equal(t, raw[len(raw)-1-i], h.Data[i])
	}
}

func TestFromPrivateKey_CorpusNeverZero(t *testing.T) {
	seen := map[PubKeyHash]bool{}
	for i := 0; i < 16; i++ {
		sk := mustKey(t, byte(i*17))
		h := FromPrivateKey(sk)
		require.False(t, h.IsZero(), "key %d hashed to the zero sentinel", i)
		require.NotEqual(t, Zero(), h)
		require.Equal(t, h, FromPublicKey(zkcrypto.PublicKeyFromPrivate(sk)))
		require.Equal(t, h, FromPrivateKey(sk), "derivation must be deterministic")
		require.False(t, seen[h], "collision in test corpus")
		seen[h] = true
	}
}

// Seed 0x01 repeated, through key derivation, MiMC and the reversal.
func TestFromPrivateKey_PinnedVector(t *testing.T) {
	sk, err := zkcrypto.PrivateKeyFromSeed(bytes.Repeat([]byte{0x01}, zkcrypto.SeedSize))
	require.NoError(t, err)

	h := FromPrivateKey(sk)
	assert.Equal(t, "sync:8a2f3367f15ddea2a1c207bd724464bd195d4017", h.Hex())

	e := h.Fr()
	assert.Equal(t, "788893339494518452433031205503798247967319474199", e.BigInt(new(big.Int)).String())
	assert.Equal(t, "0xeb5e8ac5c00e76cf2890baa442d4b2dab5a39c11fd3908dddac99cc9bb014662", h.Keccak256().Hex())
}

func TestHex_RoundTripDerived(t *testing.T) {
	h := FromPrivateKey(mustKey(t, 3))
	back, err := FromHex(h.Hex())
	require.NoError(t, err)
	assert.Equal(t, h, back)
}

func TestFr(t *testing.T) {
	z := Zero().Fr()
	assert.True(t, z.IsZero())

	var one PubKeyHash
	one.Data[params.FRAddressLen-1] = 1
	e1 := one.Fr()
	assert.True(t, e1.IsOne())

	h := FromPrivateKey(mustKey(t, 9))
	e := h.Fr()
	b := e.Bytes()
	assert.Equal(t, make([]byte, params.FrBytes-params.FRAddressLen), b[:params.FrBytes-params.FRAddressLen])
	assert.Equal(t, h.Data[:], b[params.FrBytes-params.FRAddressLen:])
}

func TestKeccak256(t *testing.T) {
	h := FromPrivateKey(mustKey(t, 11))
	assert.Equal(t, zkcrypto.Keccak256(h.Data[:]), h.Keccak256())
	assert.NotEqual(t, Zero().Keccak256(), h.Keccak256())
}

func TestOrderingAndMapKey(t *testing.T) {
	a, _ := FromHex("sync:0000000000000000000000000000000000000001")
	b, _ := FromHex("sync:0000000000000000000000000000000000000100")
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, a.Cmp(b), strings.Compare(a.Hex(), b.Hex()))

	m := map[PubKeyHash]string{a: "a", b: "b"}
	again, _ := FromHex(a.Hex())
	assert.Equal(t, "a", m[again])
}

func TestJSON(t *testing.T) {
	type account struct {
		PubKeyHash PubKeyHash  `json:"pubKeyHash"`
		Pending    *PubKeyHash `json:"pending"`
	}
	h := FromPrivateKey(mustKey(t, 5))
	out, err := json.Marshal(account{PubKeyHash: h})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pubKeyHash":"`+h.Hex()+`","pending":null}`, string(out))

	var back account
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, h, back.PubKeyHash)
	assert.Nil(t, back.Pending)

	err = json.Unmarshal([]byte(`{"pubKeyHash":"sync:00"}`), &back)
	assert.True(t, serde.IsKind(err, serde.KindSizeMismatch))
}
