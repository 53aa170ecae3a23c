package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const attachmentContentType = "application/octet-stream"

// EmailService receives parsed mail for claimed aliases, encrypts it for the
// owner's primary key and serves the ciphertext back to clients.
type EmailService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	logger      logging.Logger
}

func NewEmailService(db *sql.DB, m repomanager.RepositoryManager, blobs blobstore.Store, logger logging.Logger) *EmailService {
	return &EmailService{db: db, repomanager: m, blobs: blobs, logger: logger.With("module", "email")}
}

// Ingest stores msg for the user that claimed msg.To. Attachment blobs are
// written before the rows and removed again if the transaction fails.
func (s *EmailService) Ingest(ctx context.Context, msg envelope.InboundEmail) (string, error) {
	claim, err := s.repomanager.EmailClaims(s.db).FindByAddress(ctx, msg.To)
	if err != nil {
		return "", err
	}

	key, err := s.repomanager.EncryptionKeys(s.db).Primary(ctx, claim.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "no primary key, message dropped", "user_id", claim.UserID)
		}
		return "", err
	}
	var jwk keyvault.PublicJWK
	if err := json.Unmarshal([]byte(key.PublicKey), &jwk); err != nil {
		return "", fmt.Errorf("stored public key %s: %w", key.ID, err)
	}

	enc, err := envelope.EncryptForJWK(jwk, key.ID, msg)
	if err != nil {
		return "", fmt.Errorf("encrypt email: %w", err)
	}
	enc.ID = uuid.NewString()

	var written []string
	cleanup := func() {
		for _, k := range written {
			if err := s.blobs.Delete(context.WithoutCancel(ctx), k); err != nil {
				s.logger.Error(ctx, "orphaned attachment blob", "key", k, "error", err)
			}
		}
	}

	atts := make([]*models.EmailAttachment, 0, len(enc.Attachments))
	for _, a := range enc.Attachments {
		storageKey := blobstore.AttachmentKey(claim.UserID, enc.ID)
		if err := s.blobs.Put(ctx, storageKey, a.Ciphertext, attachmentContentType); err != nil {
			cleanup()
			return "", err
		}
		written = append(written, storageKey)
		atts = append(atts, &models.EmailAttachment{
			ID:         uuid.NewString(),
			EmailID:    enc.ID,
			Filename:   a.Filename,
			MimeType:   a.MimeType,
			Filesize:   a.Filesize,
			StorageKey: storageKey,
		})
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Emails(tx).Create(ctx, &models.Email{
			ID:                    enc.ID,
			UserID:                claim.UserID,
			EncryptionKeyID:       enc.EncryptionKeyID,
			EncryptedSymmetricKey: enc.EncryptedSymmetricKey,
			From:                  enc.From,
			To:                    enc.To,
			Subject:               enc.Subject,
			MessageHTML:           enc.MessageHTML,
			MessagePlain:          enc.MessagePlain,
			MessagePreview:        enc.MessagePreview,
			Headers:               enc.Headers,
			DateReceived:          enc.DateReceived,
		}); err != nil {
			return err
		}
		for _, a := range atts {
			if _, err := s.repomanager.Emails(tx).CreateAttachment(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		cleanup()
		return "", err
	}

	s.logger.Info(ctx, "email stored", "user_id", claim.UserID, "email_id", enc.ID, "attachments", len(atts))
	return enc.ID, nil
}

// List returns the user's emails, newest first, with attachment metadata.
func (s *EmailService) List(ctx context.Context, userID string) ([]*envelope.EncryptedEmail, error) {
	repo := s.repomanager.Emails(s.db)
	rows, err := repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*envelope.EncryptedEmail, 0, len(rows))
	for _, r := range rows {
		e, err := s.withAttachments(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *EmailService) Get(ctx context.Context, userID, id string) (*envelope.EncryptedEmail, error) {
	r, err := s.repomanager.Emails(s.db).Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.withAttachments(ctx, r)
}

func (s *EmailService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Emails(s.db).SoftDelete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "email deleted", "user_id", userID, "email_id", id)
	return nil
}

// AttachmentURL returns a short-lived download URL for the attachment
// ciphertext after checking that the email belongs to userID.
func (s *EmailService) AttachmentURL(ctx context.Context, userID, emailID, attachmentID string) (string, error) {
	repo := s.repomanager.Emails(s.db)
	if _, err := repo.Get(ctx, userID, emailID); err != nil {
		return "", err
	}
	a, err := repo.GetAttachment(ctx, emailID, attachmentID)
	if err != nil {
		return "", err
	}
	return s.blobs.PresignGet(ctx, a.StorageKey, blobstore.DefaultPresignTTL)
}

func (s *EmailService) withAttachments(ctx context.Context, r *models.Email) (*envelope.EncryptedEmail, error) {
	atts, err := s.repomanager.Emails(s.db).Attachments(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	e := &envelope.EncryptedEmail{
		ID:                    r.ID,
		EncryptionKeyID:       r.EncryptionKeyID,
		EncryptedSymmetricKey: r.EncryptedSymmetricKey,
		From:                  r.From,
		To:                    r.To,
		Subject:               r.Subject,
		MessageHTML:           r.MessageHTML,
		MessagePlain:          r.MessagePlain,
		MessagePreview:        r.MessagePreview,
		Headers:               r.Headers,
		DateReceived:          r.DateReceived,
	}
	for _, a := range atts {
		e.Attachments = append(e.Attachments, envelope.EncryptedAttachment{
			ID:       a.ID,
			Filename: a.Filename,
			MimeType: a.MimeType,
			Filesize: a.Filesize,
		})
	}
	return e, nil
}
