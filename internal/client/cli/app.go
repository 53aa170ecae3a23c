package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/config"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/services"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/session"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/filex"
	"github.com/dmitrijs2005/aliaskeeper/internal/keystore"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"

	_ "modernc.org/sqlite"
)

const cacheFileName = "cache.db"

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// vaultSession is the part of *session.Session the commands drive.
type vaultSession interface {
	Status(ctx context.Context) session.Status
	State() session.State
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte, rememberMe bool, prompt services.SecondFactorPrompt) error
	Unlock(ctx context.Context, password []byte) error
	UnlockWithKeyStore(ctx context.Context) error
	RememberKey(ctx context.Context) error
	Lock()
	Logout(ctx context.Context) error
	Touch()

	AddCredential(ctx context.Context, c *models.Credential) error
	DeleteCredential(ctx context.Context, id string) error
	Credentials(ctx context.Context) ([]models.Credential, error)
	CopyPassword(ctx context.Context, id string) (uint64, error)
	KeyPairs() ([]keyvault.KeyPair, error)
	RotateKey(ctx context.Context) (string, error)
	ChangePassword(ctx context.Context, newPassword []byte) error
	Schema(ctx context.Context) (session.SchemaInfo, error)

	Emails(ctx context.Context) ([]envelope.Result, error)
	Attachment(ctx context.Context, emailID, attachmentID string) (*envelope.Attachment, error)
	DeleteEmail(ctx context.Context, id string) error
}

// pinger is what the connectivity watcher needs from the auth service.
type pinger interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type App struct {
	config  *config.Config
	session vaultSession
	server  pinger
	reader  *bufio.Reader
	out     io.Writer
	logger  logging.Logger

	// downloadDir receives saved attachments.
	downloadDir string

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the local cache, dials the server and assembles the session.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dir, err := filex.EnsureSubdDir(c.CacheDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, cacheFileName))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewAliasKeeperClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	a := &App{
		config:      c,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		logger:      logger,
		downloadDir: dir,
	}

	as := services.NewAuthService(apiClient, db)
	vs := services.NewVaultService(apiClient, db)
	es := services.NewEmailService(apiClient)

	a.server = as
	a.session = session.New(as, vs, es, session.Options{
		IdleTimeout: c.IdleTimeout,
		KeyStore:    keystore.NewMemory(keystore.WithPrompt(a.approveKeyStore)),
		Clipboard:   session.NewClipboardTimer(NewOSC52Clipboard(os.Stdout), c.ClipboardClear),
		Logger:      logger,
		OnIdleLock: func() {
			a.printf("\nVault locked after %s of inactivity\n", c.IdleTimeout)
		},
	})

	return a, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Warn(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.server.Close(ctx)
	a.Root(ctx)
}

func (a *App) isUnlocked() bool {
	return a.session.State() == session.Unlocked
}

// StartOnlineStatusWatcher pings the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.server.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// approveKeyStore stands in for the platform authentication prompt of the
// key store.
func (a *App) approveKeyStore(ctx context.Context) error {
	ok, err := GetConfirmation(a.reader, "Allow access to the key store?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return keystore.ErrAuthenticationFailed
	}
	return nil
}
