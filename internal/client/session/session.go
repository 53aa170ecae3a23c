// Package session holds the unlocked vault of the CLI.
//
// A Session is either Locked or Unlocked. Unlocking derives the Master Key,
// decrypts the vault blob into an in-memory SQLite database and migrates
// its schema. Locking (explicitly, on logout or after the idle timeout)
// wipes the Master Key and closes the database. Every change is saved
// back to the server as a new revision before it becomes visible.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/services"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/keystore"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
)

type State int

const (
	Locked State = iota
	Unlocked
)

func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

var (
	ErrLocked      = errors.New("vault is locked")
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrWrongPasswordOrCorrupt covers every failure to open the blob. The
	// two cases cannot be told apart and the user may simply retry.
	ErrWrongPasswordOrCorrupt = errors.New("wrong password or corrupt vault")
	ErrNoClipboard            = errors.New("clipboard not available")
)

type Options struct {
	IdleTimeout time.Duration
	KeyStore    keystore.SecureKeyStore
	Clipboard   *ClipboardTimer
	Logger      logging.Logger
	// OnIdleLock runs after the idle timer locked the vault.
	OnIdleLock func()
}

type Session struct {
	mu sync.Mutex

	auth   services.AuthService
	vaults services.VaultService
	emails services.EmailService
	store  keystore.SecureKeyStore
	clip   *ClipboardTimer
	logger logging.Logger

	idle       time.Duration
	timer      *time.Timer
	timerGen   uint64
	onIdleLock func()

	state      State
	username   string
	mk         []byte
	img        *image
	keys       *keyvault.Manager
	revision   int64
	pendingKey *pb.PublicKey
	remembered bool
}

func New(auth services.AuthService, vaults services.VaultService, emails services.EmailService, opts Options) *Session {
	s := &Session{
		auth:       auth,
		vaults:     vaults,
		emails:     emails,
		store:      opts.KeyStore,
		clip:       opts.Clipboard,
		logger:     opts.Logger,
		idle:       opts.IdleTimeout,
		onIdleLock: opts.OnIdleLock,
	}
	if s.store == nil {
		s.store = keystore.Unavailable{}
	}
	if s.logger == nil {
		s.logger = logging.Nop{}
	}
	s.logger = s.logger.With("module", "session")
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status is a read-only view for the status command.
type Status struct {
	State       State
	Username    string
	Revision    int64
	IdleTimeout time.Duration
	KeyStored   bool
}

func (s *Session) Status(ctx context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{State: s.state, Username: s.username, Revision: s.revision, IdleTimeout: s.idle, KeyStored: s.remembered}
	if st.Username == "" {
		st.Username, _ = s.auth.CachedUsername(ctx)
	}
	return st
}

func (s *Session) Register(ctx context.Context, username string, password []byte) error {
	return s.auth.Register(ctx, username, password)
}

// Login authenticates online and unlocks the account's vault, creating it
// on first use.
func (s *Session) Login(ctx context.Context, username string, password []byte, rememberMe bool, prompt services.SecondFactorPrompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockLocked()

	mk, err := s.auth.Login(ctx, username, password, rememberMe, prompt)
	if err != nil {
		return err
	}
	snap, err := s.vaults.Pull(ctx)
	if err != nil {
		common.WipeByteArray(mk)
		return err
	}

	s.username = username
	if err := s.openLocked(ctx, snap, mk); err != nil {
		common.WipeByteArray(mk)
		return err
	}
	s.logger.Info(ctx, "logged in", "revision", s.revision)
	return nil
}

// Unlock reopens the vault with the master password. The server copy is
// preferred; without a connection the cached copy is used.
func (s *Session) Unlock(ctx context.Context, password []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Unlocked {
		return nil
	}

	username, err := s.auth.CachedUsername(ctx)
	if err != nil {
		if errors.Is(err, client.ErrLocalDataNotAvailable) {
			return ErrNotLoggedIn
		}
		return err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	mk, err := s.auth.OfflineKey(ctx, username, password)
	if err != nil {
		return err
	}

	s.username = username
	if err := s.openLocked(ctx, snap, mk); err != nil {
		common.WipeByteArray(mk)
		return err
	}
	return nil
}

// UnlockWithKeyStore reopens the vault with the Master Key kept in the
// secure key store. A key that no longer opens the vault is removed.
func (s *Session) UnlockWithKeyStore(ctx context.Context) error {
	if !s.store.IsAvailable() {
		return keystore.ErrNotAvailable
	}
	res := <-s.store.Retrieve(ctx)
	if res.Err != nil {
		return res.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Unlocked {
		common.WipeByteArray(res.Key)
		return nil
	}

	username, err := s.auth.CachedUsername(ctx)
	if err != nil {
		common.WipeByteArray(res.Key)
		return ErrNotLoggedIn
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		common.WipeByteArray(res.Key)
		return err
	}

	s.username = username
	if err := s.openLocked(ctx, snap, res.Key); err != nil {
		common.WipeByteArray(res.Key)
		if errors.Is(err, ErrWrongPasswordOrCorrupt) {
			s.store.Clear()
			s.remembered = false
		}
		return err
	}
	s.remembered = true
	return nil
}

// RememberKey puts a copy of the Master Key into the secure key store.
func (s *Session) RememberKey(ctx context.Context) error {
	if !s.store.IsAvailable() {
		return keystore.ErrNotAvailable
	}
	s.mu.Lock()
	if s.state != Unlocked {
		s.mu.Unlock()
		return ErrLocked
	}
	key := append([]byte(nil), s.mk...)
	s.mu.Unlock()
	defer common.WipeByteArray(key)

	if err := <-s.store.Store(ctx, key); err != nil {
		return err
	}
	s.mu.Lock()
	s.remembered = true
	s.mu.Unlock()
	return nil
}

// snapshot pulls the vault, falling back to the cache when the server is
// unreachable or the session token is gone.
func (s *Session) snapshot(ctx context.Context) (*services.Snapshot, error) {
	snap, err := s.vaults.Pull(ctx)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, client.ErrUnavailable) && !errors.Is(err, client.ErrUnauthorized) {
		return nil, err
	}
	s.logger.Warn(ctx, "server unavailable, using cached vault", "error", err)

	cached, cerr := s.vaults.Cached(ctx)
	if cerr != nil {
		return nil, err
	}
	return cached, nil
}

// Lock wipes the Master Key and closes the vault database.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockLocked()
}

func (s *Session) lockLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerGen++
	if s.clip != nil {
		s.clip.Flush()
	}
	if s.state == Locked {
		return
	}
	common.WipeByteArray(s.mk)
	s.mk = nil
	s.img.close()
	s.img = nil
	s.keys = nil
	s.pendingKey = nil
	s.state = Locked
}

// Logout locks, forgets the stored key, revokes the server session and
// clears the local cache.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lockLocked()
	s.store.Clear()
	s.remembered = false
	s.username = ""
	return s.auth.Logout(ctx)
}

// Touch restarts the idle timer.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Unlocked {
		s.resetTimerLocked()
	}
}

func (s *Session) resetTimerLocked() {
	if s.idle <= 0 {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timerGen++
	gen := s.timerGen
	s.timer = time.AfterFunc(s.idle, func() { s.idleLock(gen) })
}

func (s *Session) idleLock(gen uint64) {
	s.mu.Lock()
	if s.timerGen != gen || s.state != Unlocked {
		s.mu.Unlock()
		return
	}
	s.lockLocked()
	hook := s.onIdleLock
	s.mu.Unlock()

	s.logger.Info(context.Background(), "vault locked after idle timeout")
	if hook != nil {
		hook()
	}
}
