package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/services"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/cryptox"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
)

// kdfParams are the account's login parameters, shared by the fakes the
// way server and cache share them for real.
type kdfParams struct {
	salt     string
	kdf      string
	settings string
}

func fastParams() *kdfParams {
	return &kdfParams{salt: "5a17", kdf: cryptox.KdfPbkdf2Sha256, settings: `{"Iterations":1000}`}
}

func (p *kdfParams) derive(password []byte) ([]byte, error) {
	return cryptox.DeriveMasterKey(password, []byte(p.salt), p.kdf, p.settings)
}

type fakeAuth struct {
	p        *kdfParams
	password string
	cached   string
	loggedIn bool
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Register(context.Context, string, []byte) error { return nil }

func (f *fakeAuth) Login(_ context.Context, username string, password []byte, _ bool, _ services.SecondFactorPrompt) ([]byte, error) {
	if string(password) != f.password {
		return nil, common.ErrAuthenticationFailed
	}
	f.cached = username
	f.loggedIn = true
	return f.p.derive(password)
}

func (f *fakeAuth) OfflineKey(_ context.Context, username string, password []byte) ([]byte, error) {
	if f.cached == "" {
		return nil, client.ErrLocalDataNotAvailable
	}
	return f.p.derive(password)
}

func (f *fakeAuth) CachedUsername(context.Context) (string, error) {
	if f.cached == "" {
		return "", client.ErrLocalDataNotAvailable
	}
	return f.cached, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.cached = ""
	f.loggedIn = false
	return nil
}

func (f *fakeAuth) Ping(context.Context) error  { return nil }
func (f *fakeAuth) Close(context.Context) error { return nil }

type fakeVaults struct {
	mu       sync.Mutex
	p        *kdfParams
	server   services.Snapshot
	cached   *services.Snapshot
	saves    []*pb.SaveVaultRequest
	pullErr  error
	pushErrs []error
	changes  []*pb.ChangePasswordRequest
}

var _ services.VaultService = (*fakeVaults)(nil)

func (f *fakeVaults) Pull(context.Context) (*services.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pullErr != nil {
		return nil, f.pullErr
	}
	snap := f.server
	if snap.Blob != "" {
		c := snap
		f.cached = &c
	}
	return &snap, nil
}

func (f *fakeVaults) Cached(context.Context) (*services.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached == nil {
		return nil, client.ErrLocalDataNotAvailable
	}
	c := *f.cached
	return &c, nil
}

func (f *fakeVaults) Push(_ context.Context, req *pb.SaveVaultRequest) (*pb.SaveVaultResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pushErrs) > 0 {
		err := f.pushErrs[0]
		f.pushErrs = f.pushErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if req.CurrentRevisionNumber != f.server.Revision {
		return nil, common.ErrRevisionConflict
	}
	f.saves = append(f.saves, req)
	f.server = services.Snapshot{Blob: req.Blob, Version: req.Version, Revision: f.server.Revision + 1}
	c := f.server
	f.cached = &c
	return &pb.SaveVaultResponse{NewRevisionNumber: f.server.Revision}, nil
}

func (f *fakeVaults) ChangePassword(_ context.Context, req *pb.ChangePasswordRequest) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.CurrentRevisionNumber != f.server.Revision {
		return 0, common.ErrRevisionConflict
	}
	f.changes = append(f.changes, req)
	f.p.salt, f.p.kdf, f.p.settings = req.Salt, req.EncryptionType, req.EncryptionSettings
	f.server = services.Snapshot{Blob: req.Blob, Version: req.Version, Revision: f.server.Revision + 1}
	c := f.server
	f.cached = &c
	return f.server.Revision, nil
}

// bumpRevision simulates another device saving the same content.
func (f *fakeVaults) bumpRevision() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.server.Revision++
}

func (f *fakeVaults) lastSave() *pb.SaveVaultRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves[len(f.saves)-1]
}

type fakeEmails struct {
	keys    envelope.KeyResolver
	deleted []string
}

var _ services.EmailService = (*fakeEmails)(nil)

func (f *fakeEmails) List(_ context.Context, keys envelope.KeyResolver) ([]envelope.Result, error) {
	f.keys = keys
	return nil, nil
}

func (f *fakeEmails) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmails) Attachment(_ context.Context, keys envelope.KeyResolver, emailID, attachmentID string) (*envelope.Attachment, error) {
	f.keys = keys
	return &envelope.Attachment{ID: attachmentID}, nil
}

type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
}

func (c *fakeClipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, text)
	return nil
}

func (c *fakeClipboard) last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.writes) == 0 {
		return ""
	}
	return c.writes[len(c.writes)-1]
}
