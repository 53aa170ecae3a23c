// Package httpapi exposes the account, vault and email services as a JSON
// REST API under /v1.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/services"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address     string
	users       services.UserAPI
	vaults      services.VaultAPI
	emails      services.EmailAPI
	logger      logging.Logger
	ingestToken string
}

func NewServer(address string, l logging.Logger, us services.UserAPI, vs services.VaultAPI, es services.EmailAPI, ingestToken string) *Server {
	return &Server{
		address:     address,
		users:       us,
		vaults:      vs,
		emails:      es,
		logger:      l.With("module", "http_server"),
		ingestToken: ingestToken,
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.logRequests)

	v1 := router.PathPrefix("/v1").Subrouter()

	a := v1.PathPrefix("/Auth").Subrouter()
	a.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	a.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	a.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	a.HandleFunc("/validate", s.handleValidate).Methods(http.MethodPost)
	a.HandleFunc("/validate-2fa", s.handleValidate2FA).Methods(http.MethodPost)
	a.HandleFunc("/validate-recovery-code", s.handleValidateRecoveryCode).Methods(http.MethodPost)
	a.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodPost)
	a.HandleFunc("/revoke", s.handleRevoke).Methods(http.MethodPost)

	tf := v1.PathPrefix("/Auth/2fa").Subrouter()
	tf.Use(s.authenticate)
	tf.HandleFunc("/setup", s.handleSetupTwoFactor).Methods(http.MethodPost)
	tf.HandleFunc("/enable", s.handleEnableTwoFactor).Methods(http.MethodPost)
	tf.HandleFunc("/disable", s.handleDisableTwoFactor).Methods(http.MethodPost)

	vault := v1.PathPrefix("/Vault").Subrouter()
	vault.Use(s.authenticate)
	vault.HandleFunc("", s.handleGetVault).Methods(http.MethodGet)
	vault.HandleFunc("", s.handleSaveVault).Methods(http.MethodPost)
	vault.HandleFunc("/change-password", s.handleChangePassword).Methods(http.MethodPost)

	email := v1.PathPrefix("/Email").Subrouter()
	email.Use(s.authenticate)
	email.HandleFunc("", s.handleListEmails).Methods(http.MethodGet)
	email.HandleFunc("/{id}", s.handleGetEmail).Methods(http.MethodGet)
	email.HandleFunc("/{id}", s.handleDeleteEmail).Methods(http.MethodDelete)
	email.HandleFunc("/{id}/attachments/{attachmentId}", s.handleAttachmentURL).Methods(http.MethodGet)

	v1.HandleFunc("/Inbound", s.handleInbound).Methods(http.MethodPost)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
