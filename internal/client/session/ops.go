package session

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/repositories/vault"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/vaultschema"
)

func (s *Session) AddCredential(ctx context.Context, c *models.Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return s.Mutate(ctx, func(ctx context.Context, repo vault.Repository) error {
		return repo.AddCredential(ctx, c)
	})
}

func (s *Session) DeleteCredential(ctx context.Context, id string) error {
	return s.Mutate(ctx, func(ctx context.Context, repo vault.Repository) error {
		return repo.DeleteCredential(ctx, id)
	})
}

func (s *Session) Credentials(ctx context.Context) ([]models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	return vault.NewSQLiteRepository(s.img.conn).ListCredentials(ctx)
}

// CopyPassword puts the password of credential id on the clipboard and
// returns the generation id of the copy.
func (s *Session) CopyPassword(ctx context.Context, id string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return 0, err
	}
	if s.clip == nil {
		return 0, ErrNoClipboard
	}
	c, err := vault.NewSQLiteRepository(s.img.conn).GetCredential(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.clip.Copy(c.Password)
}

// KeyPairs lists the vault key pairs without their private halves.
func (s *Session) KeyPairs() ([]keyvault.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	pairs := s.keys.All()
	for i := range pairs {
		pairs[i].PrivateKey = keyvault.PrivateJWK{}
	}
	return pairs, nil
}

// Emails lists the account's mail decrypted with the vault keys.
func (s *Session) Emails(ctx context.Context) ([]envelope.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	return s.emails.List(ctx, s.keys)
}

func (s *Session) Attachment(ctx context.Context, emailID, attachmentID string) (*envelope.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return nil, err
	}
	return s.emails.Attachment(ctx, s.keys, emailID, attachmentID)
}

func (s *Session) DeleteEmail(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	return s.emails.Delete(ctx, id)
}

// SchemaInfo describes the open vault's schema against this client.
type SchemaInfo struct {
	Revision      int
	Version       string
	Latest        int
	LatestVersion string
	Tables        []string
}

func (s *Session) Schema(ctx context.Context) (SchemaInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return SchemaInfo{}, err
	}

	rev, err := vaultschema.CurrentRevision(ctx, s.img.conn)
	if err != nil {
		return SchemaInfo{}, err
	}
	info := SchemaInfo{Revision: rev, Latest: vaultschema.Default.Latest()}
	if v, err := vaultschema.Default.VersionForRevision(rev); err == nil {
		info.Version = v.Version
	}
	if v, err := vaultschema.Default.VersionForRevision(info.Latest); err == nil {
		info.LatestVersion = v.Version
	}
	info.Tables, err = vaultschema.Default.ExpectedTables(rev)
	return info, err
}
