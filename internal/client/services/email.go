package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/netx"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
)

// Downloader fetches attachment ciphertext from a presigned URL.
type Downloader func(ctx context.Context, url string) ([]byte, error)

type EmailService interface {
	// List decrypts every email with keys. Records that fail carry their
	// own error.
	List(ctx context.Context, keys envelope.KeyResolver) ([]envelope.Result, error)
	Delete(ctx context.Context, id string) error
	// Attachment downloads and decrypts one attachment.
	Attachment(ctx context.Context, keys envelope.KeyResolver, emailID, attachmentID string) (*envelope.Attachment, error)
}

type emailService struct {
	client   client.Client
	download Downloader
}

func NewEmailService(client client.Client) EmailService {
	return &emailService{client: client, download: netx.DownloadFromPresignedURL}
}

func fromWire(e *pb.Email) envelope.EncryptedEmail {
	out := envelope.EncryptedEmail{
		ID:                    e.Id,
		EncryptionKeyID:       e.EncryptionKeyId,
		EncryptedSymmetricKey: e.EncryptedSymmetricKey,
		From:                  e.From,
		To:                    e.To,
		Subject:               e.Subject,
		MessageHTML:           e.MessageHtml,
		MessagePlain:          e.MessagePlain,
		MessagePreview:        e.MessagePreview,
		Headers:               e.Headers,
	}
	if ts := e.GetDateReceived(); ts != nil {
		out.DateReceived = ts.AsTime()
	}
	for _, a := range e.Attachments {
		out.Attachments = append(out.Attachments, envelope.EncryptedAttachment{
			ID:       a.Id,
			Filename: a.Filename,
			MimeType: a.MimeType,
			Filesize: a.Filesize,
		})
	}
	return out
}

func (s *emailService) fetch(ctx context.Context) ([]envelope.EncryptedEmail, error) {
	wire, err := s.client.ListEmails(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]envelope.EncryptedEmail, 0, len(wire))
	for _, e := range wire {
		out = append(out, fromWire(e))
	}
	return out, nil
}

func (s *emailService) List(ctx context.Context, keys envelope.KeyResolver) ([]envelope.Result, error) {
	emails, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return envelope.DecryptAll(keys, emails), nil
}

func (s *emailService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteEmail(ctx, id)
}

func (s *emailService) Attachment(ctx context.Context, keys envelope.KeyResolver, emailID, attachmentID string) (*envelope.Attachment, error) {
	emails, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	for i := range emails {
		e := &emails[i]
		if e.ID != emailID {
			continue
		}
		m, err := envelope.Decrypt(keys, e)
		if err != nil {
			return nil, err
		}
		for _, a := range m.Attachments {
			if a.ID != attachmentID {
				continue
			}
			url, err := s.client.AttachmentURL(ctx, emailID, attachmentID)
			if err != nil {
				return nil, err
			}
			ct, err := s.download(ctx, url)
			if err != nil {
				return nil, fmt.Errorf("download attachment: %w", err)
			}
			if a.Content, err = envelope.OpenAttachment(keys, e, ct); err != nil {
				return nil, err
			}
			return &a, nil
		}
		return nil, common.ErrorNotFound
	}
	return nil, common.ErrorNotFound
}
