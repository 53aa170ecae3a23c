package services

import (
	"context"
	"database/sql"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/authattempts"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/emailclaims"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/emails"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/encryptionkeys"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/recoverycodes"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/vaults"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// expectCommits queues n Begin/Commit pairs.
func expectCommits(mock sqlmock.Sqlmock, n int) {
	for range n {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}
}

// --- users ---

type fakeUsers struct {
	mu        sync.Mutex
	byID      map[string]*models.User
	createErr error
	getErr    error
	lockErr   error
	locked    []string
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]*models.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, e := range f.byID {
		if e.UserName == u.UserName {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = "u" + strconv.Itoa(len(f.byID)+1)
	u.CreatedAt = time.Now()
	c := *u
	f.byID[u.ID] = &c
	return u, nil
}

func (f *fakeUsers) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.UserName == login {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsers) UpdateCredentials(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[u.ID]
	if !ok {
		return common.ErrorNotFound
	}
	e.Salt, e.Verifier, e.EncryptionType, e.EncryptionSettings = u.Salt, u.Verifier, u.EncryptionType, u.EncryptionSettings
	return nil
}

func (f *fakeUsers) LockForUpdate(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lockErr != nil {
		return f.lockErr
	}
	f.locked = append(f.locked, id)
	return nil
}

func (f *fakeUsers) SetTwoFactor(_ context.Context, id string, enabled bool, secret string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	e.TwoFactorEnabled, e.TotpSecret = enabled, secret
	return nil
}

// --- refresh tokens ---

type fakeRefresh struct {
	mu        sync.Mutex
	tokens    map[string]*models.RefreshToken
	findErr    error
	delErr     error
	consumeErr error
	createErr  error

	// beforeConsume runs ahead of Consume to let a test interleave another
	// session operation.
	beforeConsume func()
}

func newFakeRefresh() *fakeRefresh { return &fakeRefresh{tokens: map[string]*models.RefreshToken{}} }

func (f *fakeRefresh) Create(_ context.Context, userID, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, TokenHash: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefresh) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (f *fakeRefresh) Consume(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.beforeConsume != nil {
		f.beforeConsume()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.consumeErr != nil {
		return nil, f.consumeErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.tokens, token)
	return t, nil
}

func (f *fakeRefresh) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefresh) DeleteAllForUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeRefresh) countFor(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n
}

// --- auth attempts ---

type fakeAttempts struct {
	mu   sync.Mutex
	rows map[string]models.AuthAttempt
	now  func() time.Time
	err  error
}

func newFakeAttempts(now func() time.Time) *fakeAttempts {
	return &fakeAttempts{rows: map[string]models.AuthAttempt{}, now: now}
}

func (f *fakeAttempts) GetForUpdate(_ context.Context, userID string, class models.CredentialClass) (*models.AuthAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k := userID + "/" + string(class)
	a, ok := f.rows[k]
	if !ok {
		a = models.AuthAttempt{UserID: userID, Class: class, UpdatedAt: f.now()}
		f.rows[k] = a
	}
	return &a, nil
}

func (f *fakeAttempts) Save(_ context.Context, a *models.AuthAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *a
	c.UpdatedAt = f.now()
	f.rows[a.UserID+"/"+string(a.Class)] = c
	return nil
}

func (f *fakeAttempts) get(userID string, class models.CredentialClass) models.AuthAttempt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[userID+"/"+string(class)]
}

// --- recovery codes ---

type fakeRecovery struct {
	mu    sync.Mutex
	codes map[string]map[string]bool // user -> hash -> used
}

func newFakeRecovery() *fakeRecovery { return &fakeRecovery{codes: map[string]map[string]bool{}} }

func (f *fakeRecovery) ReplaceAll(_ context.Context, userID string, hashes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := map[string]bool{}
	for _, h := range hashes {
		m[h] = false
	}
	f.codes[userID] = m
	return nil
}

func (f *fakeRecovery) Consume(_ context.Context, userID, hash string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	used, ok := f.codes[userID][hash]
	if !ok || used {
		return false, nil
	}
	f.codes[userID][hash] = true
	return true, nil
}

func (f *fakeRecovery) CountUnused(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, used := range f.codes[userID] {
		if !used {
			n++
		}
	}
	return n, nil
}

// --- vaults ---

type fakeVaults struct {
	mu        sync.Mutex
	rows      []*models.Vault
	createErr error
}

func (f *fakeVaults) Latest(_ context.Context, userID string) (*models.Vault, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *models.Vault
	for _, v := range f.rows {
		if v.UserID == userID && (best == nil || v.RevisionNumber > best.RevisionNumber) {
			best = v
		}
	}
	if best == nil {
		return nil, common.ErrorNotFound
	}
	c := *best
	return &c, nil
}

func (f *fakeVaults) LatestRevisionForUpdate(ctx context.Context, userID string) (int64, error) {
	v, err := f.Latest(ctx, userID)
	if err != nil {
		return 0, nil
	}
	return v.RevisionNumber, nil
}

func (f *fakeVaults) Create(_ context.Context, v *models.Vault) (*models.Vault, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, e := range f.rows {
		if e.UserID == v.UserID && e.RevisionNumber == v.RevisionNumber {
			return nil, common.ErrRevisionConflict
		}
	}
	c := *v
	c.ID = "v" + strconv.Itoa(len(f.rows)+1)
	f.rows = append(f.rows, &c)
	return &c, nil
}

// --- encryption keys ---

type fakeKeys struct {
	mu   sync.Mutex
	keys map[string]*models.UserEncryptionKey
}

func newFakeKeys() *fakeKeys { return &fakeKeys{keys: map[string]*models.UserEncryptionKey{}} }

func (f *fakeKeys) Primary(_ context.Context, userID string) (*models.UserEncryptionKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range f.keys {
		if k.UserID == userID && k.IsPrimary {
			c := *k
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeKeys) List(_ context.Context, userID string) ([]*models.UserEncryptionKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.UserEncryptionKey
	for _, k := range f.keys {
		if k.UserID == userID {
			c := *k
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeKeys) Upsert(_ context.Context, k *models.UserEncryptionKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.keys[k.ID]; ok {
		e.PublicKey = k.PublicKey
		return nil
	}
	c := *k
	c.IsPrimary = false
	f.keys[k.ID] = &c
	return nil
}

func (f *fakeKeys) SetPrimary(_ context.Context, userID, keyID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.keys[keyID]
	if !ok || target.UserID != userID {
		return common.ErrorNotFound
	}
	for _, k := range f.keys {
		if k.UserID == userID {
			k.IsPrimary = k.ID == keyID
		}
	}
	return nil
}

// --- claims ---

type fakeClaims struct {
	mu     sync.Mutex
	owners map[string]string
}

func newFakeClaims() *fakeClaims { return &fakeClaims{owners: map[string]string{}} }

func (f *fakeClaims) Sync(_ context.Context, userID string, addresses []string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for a, u := range f.owners {
		if u == userID {
			delete(f.owners, a)
		}
	}
	var skipped []string
	for _, a := range addresses {
		a = emailclaims.Normalize(a)
		if u, ok := f.owners[a]; ok && u != userID {
			skipped = append(skipped, a)
			continue
		}
		f.owners[a] = userID
	}
	return skipped, nil
}

func (f *fakeClaims) FindByAddress(_ context.Context, address string) (*models.EmailClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := emailclaims.Normalize(address)
	u, ok := f.owners[a]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.EmailClaim{Address: a, UserID: u}, nil
}

func (f *fakeClaims) ListForUser(_ context.Context, userID string) ([]*models.EmailClaim, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.EmailClaim
	for a, u := range f.owners {
		if u == userID {
			out = append(out, &models.EmailClaim{Address: a, UserID: u})
		}
	}
	return out, nil
}

// --- emails ---

type fakeEmails struct {
	mu        sync.Mutex
	emails    []*models.Email
	atts      []*models.EmailAttachment
	createErr error
	attErr    error
}

func (f *fakeEmails) Create(_ context.Context, e *models.Email) (*models.Email, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	c := *e
	f.emails = append(f.emails, &c)
	return e, nil
}

func (f *fakeEmails) CreateAttachment(_ context.Context, a *models.EmailAttachment) (*models.EmailAttachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.attErr != nil {
		return nil, f.attErr
	}
	c := *a
	f.atts = append(f.atts, &c)
	return a, nil
}

func (f *fakeEmails) ListForUser(_ context.Context, userID string) ([]*models.Email, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Email
	for i := len(f.emails) - 1; i >= 0; i-- {
		e := f.emails[i]
		if e.UserID == userID && !e.IsDeleted {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeEmails) Get(_ context.Context, userID, id string) (*models.Email, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.emails {
		if e.ID == id && e.UserID == userID && !e.IsDeleted {
			c := *e
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEmails) Attachments(_ context.Context, emailID string) ([]*models.EmailAttachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.EmailAttachment
	for _, a := range f.atts {
		if a.EmailID == emailID {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeEmails) GetAttachment(_ context.Context, emailID, id string) (*models.EmailAttachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.atts {
		if a.EmailID == emailID && a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEmails) SoftDelete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.emails {
		if e.ID == id && e.UserID == userID && !e.IsDeleted {
			e.IsDeleted = true
			return nil
		}
	}
	return common.ErrorNotFound
}

// --- manager ---

type fakeRepoManager struct {
	users    *fakeUsers
	refresh  *fakeRefresh
	attempts *fakeAttempts
	recovery *fakeRecovery
	vaults   *fakeVaults
	keys     *fakeKeys
	claims   *fakeClaims
	emails   *fakeEmails
}

func newFakeRepoManager(now func() time.Time) *fakeRepoManager {
	return &fakeRepoManager{
		users:    newFakeUsers(),
		refresh:  newFakeRefresh(),
		attempts: newFakeAttempts(now),
		recovery: newFakeRecovery(),
		vaults:   &fakeVaults{},
		keys:     newFakeKeys(),
		claims:   newFakeClaims(),
		emails:   &fakeEmails{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error      { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                   { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository   { return m.refresh }
func (m *fakeRepoManager) AuthAttempts(dbx.DBTX) authattempts.Repository     { return m.attempts }
func (m *fakeRepoManager) RecoveryCodes(dbx.DBTX) recoverycodes.Repository   { return m.recovery }
func (m *fakeRepoManager) Vaults(dbx.DBTX) vaults.Repository                 { return m.vaults }
func (m *fakeRepoManager) EncryptionKeys(dbx.DBTX) encryptionkeys.Repository { return m.keys }
func (m *fakeRepoManager) EmailClaims(dbx.DBTX) emailclaims.Repository       { return m.claims }
func (m *fakeRepoManager) Emails(dbx.DBTX) emails.Repository                 { return m.emails }
