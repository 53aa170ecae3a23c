// Package srp implements the SRP-6a password-authenticated key exchange
// used by login: a verifier is registered once, and each login proves
// knowledge of the password without sending it.
//
// All values crossing the wire are lowercase hex strings. The hash is
// SHA-256 and the group is the 2048-bit group from RFC 5054 with g = 2.
package srp

import (
	"crypto/sha256"
	"math/big"
	"strings"
)

const rfc5054N2048 = `
AC6BDB41 324A9A9B F166DE5E 1389582F AF72B665 1987EE07 FC319294 3DB56050
A37329CB B4A099ED 8193E075 7767A13D D52312AB 4B03310D CD7F48A9 DA04FD50
E8083969 EDB767B0 CF609517 9A163AB3 661A05FB D5FAAAE8 2918A996 2F0B93B8
55F97993 EC975EEA A80D740A DBF4FF74 7359D041 D5C33EA7 1D281E44 6B14773B
CA97B43A 23FB8016 76BD207A 436C6481 F1D2B907 8717461A 5B9D32E6 88F87748
544523B5 24B0D57D 5EA77A27 75D2ECFA 032CFBDB F52FB378 61602790 04E57AE6
AF874E73 03CE5329 9CCC041C 7BC308D8 2A5698F3 A8D0C382 71AE35F8 E9DBFBB6
94B5C803 D89F7AE4 35DE236D 525F5475 9B65E372 FCD68EF2 0FA7111F 9E4AFF73`

// Group holds the SRP parameters derived once from N and g.
type Group struct {
	N *big.Int
	G *big.Int
	K *big.Int // k = H(N | PAD(g))

	size int // byte length of N
}

// Default is the RFC 5054 2048-bit group.
var Default = mustGroup(rfc5054N2048, 2)

func mustGroup(nHex string, g int64) *Group {
	clean := strings.Join(strings.Fields(nHex), "")
	n, ok := new(big.Int).SetString(clean, 16)
	if !ok {
		panic("srp: invalid group prime")
	}
	grp := &Group{N: n, G: big.NewInt(g), size: (n.BitLen() + 7) / 8}
	grp.K = new(big.Int).SetBytes(hash(n.Bytes(), grp.pad(grp.G)))
	return grp
}

// pad left-pads the big-endian bytes of v to the length of N.
func (g *Group) pad(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) >= g.size {
		return b
	}
	out := make([]byte, g.size)
	copy(out[g.size-len(b):], b)
	return out
}

func hash(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func hashInt(parts ...[]byte) *big.Int {
	return new(big.Int).SetBytes(hash(parts...))
}
