package srp

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrMalformedValue is returned for a salt, key or proof that is not valid hex.
	ErrMalformedValue = errors.New("srp: malformed value")

	// ErrInvalidEphemeral is returned when a peer's public ephemeral is 0 mod N.
	ErrInvalidEphemeral = errors.New("srp: invalid public ephemeral")

	// ErrInvalidProof means the peer did not prove knowledge of the shared key.
	ErrInvalidProof = errors.New("srp: invalid session proof")
)

const (
	saltSize      = 32
	ephemeralSize = 32
)

// Ephemeral is a one-time key pair: Secret stays local, Public is sent.
type Ephemeral struct {
	Secret string
	Public string
}

// Session is the outcome of a successful key agreement.
// Key is the shared session key K, Proof is this side's proof (M1 on the
// client, M2 on the server).
type Session struct {
	Key   string
	Proof string
}

// GenerateSalt returns a fresh random salt.
func GenerateSalt() string {
	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// DerivePrivateKey computes x = H(s | H(I ":" P)).
func (g *Group) DerivePrivateKey(salt, username, password string) (string, error) {
	s, err := hex.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("%w: salt", ErrMalformedValue)
	}
	inner := hash([]byte(username + ":" + password))
	return hex.EncodeToString(hash(s, inner)), nil
}

// DeriveVerifier computes v = g^x mod N.
func (g *Group) DeriveVerifier(privateKey string) (string, error) {
	x, err := parseHex(privateKey)
	if err != nil {
		return "", err
	}
	return toHex(new(big.Int).Exp(g.G, x, g.N)), nil
}

// GenerateClientEphemeral picks a and computes A = g^a mod N.
func (g *Group) GenerateClientEphemeral() Ephemeral {
	a := randomInt()
	A := new(big.Int).Exp(g.G, a, g.N)
	return Ephemeral{Secret: toHex(a), Public: toHex(A)}
}

// GenerateServerEphemeral picks b and computes B = k*v + g^b mod N.
func (g *Group) GenerateServerEphemeral(verifier string) (Ephemeral, error) {
	v, err := parseHex(verifier)
	if err != nil {
		return Ephemeral{}, err
	}
	for {
		b := randomInt()
		B := g.serverPublic(v, b)
		if B.Sign() != 0 {
			return Ephemeral{Secret: toHex(b), Public: toHex(B)}, nil
		}
	}
}

func (g *Group) serverPublic(v, b *big.Int) *big.Int {
	kv := new(big.Int).Mul(g.K, v)
	gb := new(big.Int).Exp(g.G, b, g.N)
	return kv.Add(kv, gb).Mod(kv, g.N)
}

// DeriveClientSession runs the client half of the exchange and returns the
// shared key together with the client proof M1.
func (g *Group) DeriveClientSession(clientSecret, serverPublic, salt, username, privateKey string) (*Session, error) {
	a, err := parseHex(clientSecret)
	if err != nil {
		return nil, err
	}
	B, err := parseHex(serverPublic)
	if err != nil {
		return nil, err
	}
	x, err := parseHex(privateKey)
	if err != nil {
		return nil, err
	}
	s, err := hex.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt", ErrMalformedValue)
	}
	if new(big.Int).Mod(B, g.N).Sign() == 0 {
		return nil, ErrInvalidEphemeral
	}

	A := new(big.Int).Exp(g.G, a, g.N)
	u := g.scramble(A, B)
	if u.Sign() == 0 {
		return nil, ErrInvalidEphemeral
	}

	// S = (B - k*g^x) ^ (a + u*x) mod N
	gx := new(big.Int).Exp(g.G, x, g.N)
	base := new(big.Int).Sub(B, new(big.Int).Mul(g.K, gx))
	base.Mod(base, g.N)
	exp := new(big.Int).Mul(u, x)
	exp.Add(exp, a)
	S := new(big.Int).Exp(base, exp, g.N)

	K := hash(S.Bytes())
	M1 := g.clientProof(username, s, A, B, K)

	return &Session{Key: hex.EncodeToString(K), Proof: hex.EncodeToString(M1)}, nil
}

// DeriveServerSession verifies the client proof M1 against the stored
// verifier and returns the shared key with the server proof M2.
// A wrong password surfaces as ErrInvalidProof.
func (g *Group) DeriveServerSession(serverSecret, clientPublic, salt, username, verifier, clientProof string) (*Session, error) {
	b, err := parseHex(serverSecret)
	if err != nil {
		return nil, err
	}
	A, err := parseHex(clientPublic)
	if err != nil {
		return nil, err
	}
	v, err := parseHex(verifier)
	if err != nil {
		return nil, err
	}
	s, err := hex.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt", ErrMalformedValue)
	}
	m1, err := hex.DecodeString(clientProof)
	if err != nil {
		return nil, fmt.Errorf("%w: proof", ErrMalformedValue)
	}
	if new(big.Int).Mod(A, g.N).Sign() == 0 {
		return nil, ErrInvalidEphemeral
	}

	B := g.serverPublic(v, b)
	u := g.scramble(A, B)
	if u.Sign() == 0 {
		return nil, ErrInvalidEphemeral
	}

	// S = (A * v^u) ^ b mod N
	base := new(big.Int).Exp(v, u, g.N)
	base.Mul(base, A).Mod(base, g.N)
	S := new(big.Int).Exp(base, b, g.N)

	K := hash(S.Bytes())
	expected := g.clientProof(username, s, A, B, K)
	if subtle.ConstantTimeCompare(expected, m1) != 1 {
		return nil, ErrInvalidProof
	}

	M2 := hash(A.Bytes(), expected, K)
	return &Session{Key: hex.EncodeToString(K), Proof: hex.EncodeToString(M2)}, nil
}

// VerifySession checks the server proof M2 on the client side.
func (g *Group) VerifySession(clientPublic string, session *Session, serverProof string) error {
	A, err := parseHex(clientPublic)
	if err != nil {
		return err
	}
	m1, err := hex.DecodeString(session.Proof)
	if err != nil {
		return fmt.Errorf("%w: proof", ErrMalformedValue)
	}
	K, err := hex.DecodeString(session.Key)
	if err != nil {
		return fmt.Errorf("%w: key", ErrMalformedValue)
	}
	m2, err := hex.DecodeString(serverProof)
	if err != nil {
		return fmt.Errorf("%w: proof", ErrMalformedValue)
	}

	if subtle.ConstantTimeCompare(hash(A.Bytes(), m1, K), m2) != 1 {
		return ErrInvalidProof
	}
	return nil
}

// u = H(PAD(A) | PAD(B))
func (g *Group) scramble(A, B *big.Int) *big.Int {
	return hashInt(g.pad(A), g.pad(B))
}

// M1 = H(H(N) xor H(g) | H(I) | s | A | B | K)
func (g *Group) clientProof(username string, salt []byte, A, B *big.Int, K []byte) []byte {
	hn := hash(g.N.Bytes())
	hg := hash(g.G.Bytes())
	for i := range hn {
		hn[i] ^= hg[i]
	}
	return hash(hn, hash([]byte(username)), salt, A.Bytes(), B.Bytes(), K)
}

func randomInt() *big.Int {
	b := make([]byte, ephemeralSize)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(b)
}

func parseHex(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: not a hex integer", ErrMalformedValue)
	}
	return v, nil
}

func toHex(v *big.Int) string { return v.Text(16) }
