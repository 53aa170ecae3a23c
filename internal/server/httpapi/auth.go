package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/services"
)

type registerRequest struct {
	UserName           string `json:"username"`
	Salt               string `json:"salt"`
	Verifier           string `json:"verifier"`
	EncryptionType     string `json:"encryptionType"`
	EncryptionSettings string `json:"encryptionSettings"`
}

type loginRequest struct {
	UserName string `json:"username"`
}

type loginResponse struct {
	Salt               string `json:"salt"`
	ServerEphemeral    string `json:"serverEphemeral"`
	EncryptionType     string `json:"encryptionType"`
	EncryptionSettings string `json:"encryptionSettings"`
}

type validateRequest struct {
	UserName              string `json:"username"`
	ClientPublicEphemeral string `json:"clientPublicEphemeral"`
	ClientSessionProof    string `json:"clientSessionProof"`
	RememberMe            bool   `json:"rememberMe"`
	Code                  string `json:"code,omitempty"`
}

func (r validateRequest) toService() services.ValidateRequest {
	return services.ValidateRequest{
		UserName:              r.UserName,
		ClientPublicEphemeral: r.ClientPublicEphemeral,
		ClientSessionProof:    r.ClientSessionProof,
		RememberMe:            r.RememberMe,
	}
}

type validateResponse struct {
	ServerSessionProof string `json:"serverSessionProof,omitempty"`
	AccessToken        string `json:"accessToken,omitempty"`
	RefreshToken       string `json:"refreshToken,omitempty"`
	RequiresTwoFactor  bool   `json:"requiresTwoFactor"`
}

func toValidateResponse(res *services.LoginResult) validateResponse {
	out := validateResponse{ServerSessionProof: res.ServerSessionProof, RequiresTwoFactor: res.RequiresTwoFactor}
	if res.Token != nil {
		out.AccessToken = res.Token.AccessToken
		out.RefreshToken = res.Token.RefreshToken
	}
	return out
}

type tokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type codeRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	u, err := s.users.Register(r.Context(), services.RegisterRequest{
		UserName:           req.UserName,
		Salt:               req.Salt,
		Verifier:           req.Verifier,
		EncryptionType:     req.EncryptionType,
		EncryptionSettings: req.EncryptionSettings,
	})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": u.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	ch, err := s.users.LoginInit(r.Context(), req.UserName)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Salt:               ch.Salt,
		ServerEphemeral:    ch.ServerEphemeral,
		EncryptionType:     ch.EncryptionType,
		EncryptionSettings: ch.EncryptionSettings,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	res, err := s.users.Validate(r.Context(), req.toService())
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toValidateResponse(res))
}

func (s *Server) handleValidate2FA(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	res, err := s.users.Validate2FA(r.Context(), req.toService(), req.Code)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toValidateResponse(res))
}

func (s *Server) handleValidateRecoveryCode(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	res, err := s.users.ValidateRecoveryCode(r.Context(), req.toService(), req.Code)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toValidateResponse(res))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	pair, err := s.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		// an unknown refresh token is an auth failure, not a missing resource
		if isNotFound(err) {
			writeProblem(w, http.StatusUnauthorized, "invalid refresh token")
			return
		}
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (s *Server) handleRevoke(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	if err := s.users.Revoke(r.Context(), req.RefreshToken); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetupTwoFactor(w http.ResponseWriter, r *http.Request) {
	setup, err := s.users.SetupTwoFactor(r.Context(), userID(r.Context()))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"secret": setup.Secret, "url": setup.URL})
}

func (s *Server) handleEnableTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	codes, err := s.users.EnableTwoFactor(r.Context(), userID(r.Context()), req.Code)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"recoveryCodes": codes})
}

func (s *Server) handleDisableTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	if err := s.users.DisableTwoFactor(r.Context(), userID(r.Context()), req.Code); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
