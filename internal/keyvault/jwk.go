package keyvault

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
)

const (
	ktyRSA     = "RSA"
	algOAEP256 = "RSA-OAEP-256"
)

var ErrInvalidJWK = errors.New("invalid jwk")

// PublicJWK is an RSA public key in JSON Web Key form (RFC 7517/7518).
// Field names match the keys already stored in existing vaults.
type PublicJWK struct {
	Kty    string   `json:"kty"`
	N      string   `json:"n"`
	E      string   `json:"e"`
	Alg    string   `json:"alg,omitempty"`
	Ext    bool     `json:"ext,omitempty"`
	KeyOps []string `json:"key_ops,omitempty"`
}

// PrivateJWK adds the private CRT members. It never leaves the vault.
type PrivateJWK struct {
	PublicJWK
	D  string `json:"d"`
	P  string `json:"p"`
	Q  string `json:"q"`
	DP string `json:"dp"`
	DQ string `json:"dq"`
	QI string `json:"qi"`
}

func b64(v *big.Int) string {
	return base64.RawURLEncoding.EncodeToString(v.Bytes())
}

func unb64(field, s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidJWK, field)
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJWK, field, err)
	}
	return new(big.Int).SetBytes(b), nil
}

// PublicFromRSA encodes pub as a JWK usable for RSA-OAEP-256 encryption.
func PublicFromRSA(pub *rsa.PublicKey) PublicJWK {
	return PublicJWK{
		Kty:    ktyRSA,
		N:      b64(pub.N),
		E:      b64(big.NewInt(int64(pub.E))),
		Alg:    algOAEP256,
		Ext:    true,
		KeyOps: []string{"encrypt"},
	}
}

// PrivateFromRSA encodes priv including its precomputed CRT values.
func PrivateFromRSA(priv *rsa.PrivateKey) PrivateJWK {
	priv.Precompute()
	pub := PublicFromRSA(&priv.PublicKey)
	pub.KeyOps = []string{"decrypt"}
	return PrivateJWK{
		PublicJWK: pub,
		D:         b64(priv.D),
		P:         b64(priv.Primes[0]),
		Q:         b64(priv.Primes[1]),
		DP:        b64(priv.Precomputed.Dp),
		DQ:        b64(priv.Precomputed.Dq),
		QI:        b64(priv.Precomputed.Qinv),
	}
}

// RSA decodes the public key.
func (k PublicJWK) RSA() (*rsa.PublicKey, error) {
	if k.Kty != ktyRSA {
		return nil, fmt.Errorf("%w: kty %q", ErrInvalidJWK, k.Kty)
	}
	n, err := unb64("n", k.N)
	if err != nil {
		return nil, err
	}
	e, err := unb64("e", k.E)
	if err != nil {
		return nil, err
	}
	if !e.IsInt64() || e.Int64() < 3 || e.Int64() > 1<<31-1 {
		return nil, fmt.Errorf("%w: exponent out of range", ErrInvalidJWK)
	}
	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}

// RSA decodes and validates the private key.
func (k PrivateJWK) RSA() (*rsa.PrivateKey, error) {
	pub, err := k.PublicJWK.RSA()
	if err != nil {
		return nil, err
	}
	d, err := unb64("d", k.D)
	if err != nil {
		return nil, err
	}
	p, err := unb64("p", k.P)
	if err != nil {
		return nil, err
	}
	q, err := unb64("q", k.Q)
	if err != nil {
		return nil, err
	}

	priv := &rsa.PrivateKey{PublicKey: *pub, D: d, Primes: []*big.Int{p, q}}
	if err := priv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWK, err)
	}
	priv.Precompute()
	return priv, nil
}
