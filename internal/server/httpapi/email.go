package httpapi

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/gorilla/mux"
)

// IngestTokenHeader carries the shared secret of the mail ingestion hook.
const IngestTokenHeader = "X-Ingest-Token"

type attachmentJSON struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Filesize int64  `json:"filesize"`
}

// emailJSON is an EncryptedEmail on the wire. Sealed fields stay base64.
type emailJSON struct {
	ID                    string           `json:"id"`
	EncryptionKeyID       string           `json:"encryptionKeyId"`
	EncryptedSymmetricKey string           `json:"encryptedSymmetricKey"`
	From                  string           `json:"from"`
	To                    string           `json:"to"`
	Subject               string           `json:"subject"`
	MessageHTML           string           `json:"messageHtml"`
	MessagePlain          string           `json:"messagePlain"`
	MessagePreview        string           `json:"messagePreview"`
	Headers               string           `json:"headers"`
	DateReceived          time.Time        `json:"dateReceived"`
	Attachments           []attachmentJSON `json:"attachments"`
}

func toEmailJSON(e *envelope.EncryptedEmail) emailJSON {
	out := emailJSON{
		ID:                    e.ID,
		EncryptionKeyID:       e.EncryptionKeyID,
		EncryptedSymmetricKey: e.EncryptedSymmetricKey,
		From:                  e.From,
		To:                    e.To,
		Subject:               e.Subject,
		MessageHTML:           e.MessageHTML,
		MessagePlain:          e.MessagePlain,
		MessagePreview:        e.MessagePreview,
		Headers:               e.Headers,
		DateReceived:          e.DateReceived,
		Attachments:           []attachmentJSON{},
	}
	for _, a := range e.Attachments {
		out.Attachments = append(out.Attachments, attachmentJSON{ID: a.ID, Filename: a.Filename, MimeType: a.MimeType, Filesize: a.Filesize})
	}
	return out
}

type inboundAttachment struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Content  []byte `json:"content"`
}

type inboundRequest struct {
	From           string              `json:"from"`
	To             string              `json:"to"`
	Subject        string              `json:"subject"`
	MessageHTML    string              `json:"messageHtml"`
	MessagePlain   string              `json:"messagePlain"`
	MessagePreview string              `json:"messagePreview"`
	Headers        string              `json:"headers"`
	DateReceived   time.Time           `json:"dateReceived"`
	Attachments    []inboundAttachment `json:"attachments"`
}

func (s *Server) handleListEmails(w http.ResponseWriter, r *http.Request) {
	list, err := s.emails.List(r.Context(), userID(r.Context()))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	out := make([]emailJSON, 0, len(list))
	for _, e := range list {
		out = append(out, toEmailJSON(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"emails": out})
}

func (s *Server) handleGetEmail(w http.ResponseWriter, r *http.Request) {
	e, err := s.emails.Get(r.Context(), userID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmailJSON(e))
}

func (s *Server) handleDeleteEmail(w http.ResponseWriter, r *http.Request) {
	if err := s.emails.Delete(r.Context(), userID(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAttachmentURL(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	url, err := s.emails.AttachmentURL(r.Context(), userID(r.Context()), vars["id"], vars["attachmentId"])
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// handleInbound is the hook a mail receiver posts parsed messages to.
func (s *Server) handleInbound(w http.ResponseWriter, r *http.Request) {
	got := r.Header.Get(IngestTokenHeader)
	if s.ingestToken == "" || subtle.ConstantTimeCompare([]byte(got), []byte(s.ingestToken)) != 1 {
		writeProblem(w, http.StatusForbidden, "forbidden")
		return
	}

	var req inboundRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	msg := envelope.InboundEmail{
		From:           req.From,
		To:             req.To,
		Subject:        req.Subject,
		MessageHTML:    req.MessageHTML,
		MessagePlain:   req.MessagePlain,
		MessagePreview: req.MessagePreview,
		Headers:        req.Headers,
		DateReceived:   req.DateReceived,
	}
	if msg.DateReceived.IsZero() {
		msg.DateReceived = time.Now().UTC()
	}
	for _, a := range req.Attachments {
		msg.Attachments = append(msg.Attachments, envelope.Attachment{Filename: a.Filename, MimeType: a.MimeType, Content: a.Content})
	}

	id, err := s.emails.Ingest(r.Context(), msg)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"id": id})
}
