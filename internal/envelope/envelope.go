// Package envelope encrypts inbound email for a recipient's RSA public key
// and opens it again with the matching private key from the vault.
//
// Each message gets its own random 256-bit key S. Every sensitive field and
// every attachment is sealed under S with AES-256-GCM and a fresh nonce;
// S itself is wrapped with RSA-OAEP/SHA-256.
package envelope

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/cryptox"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
)

// Attachment is a plaintext attachment as handed over by mail ingestion.
type Attachment struct {
	ID       string
	Filename string
	MimeType string
	Content  []byte
}

// InboundEmail is an already parsed message. From and To stay in the
// clear on the server because they are needed for routing.
type InboundEmail struct {
	From           string
	To             string
	Subject        string
	MessageHTML    string
	MessagePlain   string
	MessagePreview string
	Headers        string
	DateReceived   time.Time
	Attachments    []Attachment
}

type EncryptedAttachment struct {
	ID         string // assigned by storage
	Filename   string // sealed, base64
	MimeType   string
	Filesize   int64
	Ciphertext []byte // nonce || ct || tag
}

// EncryptedEmail is the stored form. String fields hold base64 sealed data.
type EncryptedEmail struct {
	ID                    string
	EncryptionKeyID       string
	EncryptedSymmetricKey string
	From                  string
	To                    string
	Subject               string
	MessageHTML           string
	MessagePlain          string
	MessagePreview        string
	Headers               string
	DateReceived          time.Time
	Attachments           []EncryptedAttachment
}

// Email is a decrypted message.
type Email struct {
	ID string
	InboundEmail
}

// KeyResolver finds a private key by the id recorded on an email.
// *keyvault.Manager implements it.
type KeyResolver interface {
	PrivateKey(id string) (*rsa.PrivateKey, error)
}

// Encrypt seals msg for pub. keyID identifies the key pair and is stored
// with the result so the client can pick the right private key later.
func Encrypt(pub *rsa.PublicKey, keyID string, msg InboundEmail) (*EncryptedEmail, error) {
	s := common.GenerateRandByteArray(cryptox.KeySize)
	defer common.WipeByteArray(s)

	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, s, nil)
	if err != nil {
		return nil, fmt.Errorf("wrap symmetric key: %w", err)
	}

	out := &EncryptedEmail{
		EncryptionKeyID:       keyID,
		EncryptedSymmetricKey: base64.StdEncoding.EncodeToString(wrapped),
		From:                  msg.From,
		To:                    msg.To,
		DateReceived:          msg.DateReceived,
	}

	fields := []struct {
		dst *string
		src string
	}{
		{&out.Subject, msg.Subject},
		{&out.MessageHTML, msg.MessageHTML},
		{&out.MessagePlain, msg.MessagePlain},
		{&out.MessagePreview, msg.MessagePreview},
		{&out.Headers, msg.Headers},
	}
	for _, f := range fields {
		if *f.dst, err = sealString(f.src, s); err != nil {
			return nil, err
		}
	}

	for _, a := range msg.Attachments {
		name, err := sealString(a.Filename, s)
		if err != nil {
			return nil, err
		}
		ct, err := cryptox.Seal(a.Content, s)
		if err != nil {
			return nil, err
		}
		out.Attachments = append(out.Attachments, EncryptedAttachment{
			Filename:   name,
			MimeType:   a.MimeType,
			Filesize:   int64(len(a.Content)),
			Ciphertext: ct,
		})
	}
	return out, nil
}

// EncryptForJWK is Encrypt with the recipient key given as a JWK.
func EncryptForJWK(pub keyvault.PublicJWK, keyID string, msg InboundEmail) (*EncryptedEmail, error) {
	k, err := pub.RSA()
	if err != nil {
		return nil, err
	}
	return Encrypt(k, keyID, msg)
}

// Decrypt opens e with the private key it references. A missing key
// yields keyvault.ErrDecryptionKeyMissing; any other failure
// cryptox.ErrIntegrity.
func Decrypt(keys KeyResolver, e *EncryptedEmail) (*Email, error) {
	priv, err := keys.PrivateKey(e.EncryptionKeyID)
	if err != nil {
		if errors.Is(err, keyvault.ErrDecryptionKeyMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", cryptox.ErrIntegrity, err)
	}

	wrapped, err := base64.StdEncoding.DecodeString(e.EncryptedSymmetricKey)
	if err != nil {
		return nil, cryptox.ErrIntegrity
	}
	s, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, cryptox.ErrIntegrity
	}
	defer common.WipeByteArray(s)

	out := &Email{ID: e.ID}
	out.From, out.To, out.DateReceived = e.From, e.To, e.DateReceived

	fields := []struct {
		dst *string
		src string
	}{
		{&out.Subject, e.Subject},
		{&out.MessageHTML, e.MessageHTML},
		{&out.MessagePlain, e.MessagePlain},
		{&out.MessagePreview, e.MessagePreview},
		{&out.Headers, e.Headers},
	}
	for _, f := range fields {
		if *f.dst, err = openString(f.src, s); err != nil {
			return nil, err
		}
	}

	for _, a := range e.Attachments {
		name, err := openString(a.Filename, s)
		if err != nil {
			return nil, err
		}
		// Listings carry metadata only; content is fetched via OpenAttachment.
		var content []byte
		if a.Ciphertext != nil {
			if content, err = cryptox.Open(a.Ciphertext, s); err != nil {
				return nil, err
			}
		}
		out.Attachments = append(out.Attachments, Attachment{ID: a.ID, Filename: name, MimeType: a.MimeType, Content: content})
	}
	return out, nil
}

// OpenAttachment decrypts a single attachment fetched separately from
// blob storage, using the symmetric key wrapped on its email.
func OpenAttachment(keys KeyResolver, e *EncryptedEmail, ciphertext []byte) ([]byte, error) {
	priv, err := keys.PrivateKey(e.EncryptionKeyID)
	if err != nil {
		return nil, err
	}
	wrapped, err := base64.StdEncoding.DecodeString(e.EncryptedSymmetricKey)
	if err != nil {
		return nil, cryptox.ErrIntegrity
	}
	s, err := rsa.DecryptOAEP(sha256.New(), nil, priv, wrapped, nil)
	if err != nil {
		return nil, cryptox.ErrIntegrity
	}
	defer common.WipeByteArray(s)
	return cryptox.Open(ciphertext, s)
}

// Result is the per-record outcome of DecryptAll.
type Result struct {
	ID    string
	Email *Email
	Err   error
}

// DecryptAll decrypts every email independently. A failing record carries
// its error and does not stop the others.
func DecryptAll(keys KeyResolver, emails []EncryptedEmail) []Result {
	out := make([]Result, 0, len(emails))
	for i := range emails {
		m, err := Decrypt(keys, &emails[i])
		out = append(out, Result{ID: emails[i].ID, Email: m, Err: err})
	}
	return out
}

func sealString(v string, key []byte) (string, error) {
	ct, err := cryptox.Seal([]byte(v), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

func openString(v string, key []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return "", cryptox.ErrIntegrity
	}
	pt, err := cryptox.Open(raw, key)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}
