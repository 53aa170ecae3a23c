package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/services"
)

type vaultResponse struct {
	Success             bool     `json:"success"`
	Vault               string   `json:"vault"`
	Version             string   `json:"version"`
	PublicEmailDomains  []string `json:"publicEmailDomains"`
	PrivateEmailDomains []string `json:"privateEmailDomains"`
	VaultRevisionNumber int64    `json:"vaultRevisionNumber"`
	EncryptionType      string   `json:"encryptionType"`
	EncryptionSettings  string   `json:"encryptionSettings"`
	Salt                string   `json:"salt"`
}

type publicKeyJSON struct {
	ID        string `json:"id"`
	PublicKey string `json:"publicKey"`
}

type saveVaultRequest struct {
	Blob                  string         `json:"blob"`
	Version               string         `json:"version"`
	CurrentRevisionNumber int64          `json:"currentRevisionNumber"`
	EncryptionPublicKey   *publicKeyJSON `json:"encryptionPublicKey,omitempty"`
	CredentialsCount      int            `json:"credentialsCount"`
	EmailAddressList      []string       `json:"emailAddressList"`
}

type saveVaultResponse struct {
	Status            string   `json:"status"`
	NewRevisionNumber int64    `json:"newRevisionNumber"`
	RejectedAddresses []string `json:"rejectedAddresses,omitempty"`
}

type changePasswordRequest struct {
	Salt                  string `json:"salt"`
	Verifier              string `json:"verifier"`
	EncryptionType        string `json:"encryptionType"`
	EncryptionSettings    string `json:"encryptionSettings"`
	Blob                  string `json:"blob"`
	Version               string `json:"version"`
	CurrentRevisionNumber int64  `json:"currentRevisionNumber"`
	CredentialsCount      int    `json:"credentialsCount"`
}

func (s *Server) handleGetVault(w http.ResponseWriter, r *http.Request) {
	v, err := s.vaults.GetVault(r.Context(), userID(r.Context()))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, vaultResponse{
		Success:             true,
		Vault:               v.Vault,
		Version:             v.Version,
		PublicEmailDomains:  v.PublicEmailDomains,
		PrivateEmailDomains: v.PrivateEmailDomains,
		VaultRevisionNumber: v.RevisionNumber,
		EncryptionType:      v.EncryptionType,
		EncryptionSettings:  v.EncryptionSettings,
		Salt:                v.Salt,
	})
}

func (s *Server) handleSaveVault(w http.ResponseWriter, r *http.Request) {
	var req saveVaultRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	in := services.SaveVaultRequest{
		Blob:                  req.Blob,
		Version:               req.Version,
		CurrentRevisionNumber: req.CurrentRevisionNumber,
		CredentialsCount:      req.CredentialsCount,
		EmailAddressList:      req.EmailAddressList,
	}
	if k := req.EncryptionPublicKey; k != nil {
		in.EncryptionPublicKey = &services.PublicKeyUpload{ID: k.ID, PublicKey: k.PublicKey}
	}

	res, err := s.vaults.SaveVault(r.Context(), userID(r.Context()), in)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, saveVaultResponse{
		Status:            "ok",
		NewRevisionNumber: res.NewRevisionNumber,
		RejectedAddresses: res.RejectedAddresses,
	})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	rev, err := s.vaults.ChangePassword(r.Context(), userID(r.Context()), services.ChangePasswordRequest(req))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, saveVaultResponse{Status: "ok", NewRevisionNumber: rev})
}
