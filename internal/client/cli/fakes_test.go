package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/config"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/services"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/session"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
)

type fakeSession struct {
	state  session.State
	status session.Status

	registered []string
	loginUser  string
	loginPW    string
	remember   bool
	loginErr   error
	factor     client.Factor
	code       string

	unlockPW       string
	unlockErr      error
	keyStoreErr    error
	keyStoreCalled bool
	rememberErr    error
	locked         int
	loggedOut      bool
	touched        int

	added       []models.Credential
	addErr      error
	deleted     []string
	credentials []models.Credential
	copied      []string
	copyErr     error
	pairs       []keyvault.KeyPair
	rotatedID   string
	newPW       string
	schema      session.SchemaInfo

	emails        []envelope.Result
	attachment    *envelope.Attachment
	attachmentErr error
	deletedEmails []string
}

func (f *fakeSession) Status(context.Context) session.Status {
	st := f.status
	st.State = f.state
	return st
}
func (f *fakeSession) State() session.State { return f.state }

func (f *fakeSession) Register(_ context.Context, username string, password []byte) error {
	f.registered = append(f.registered, username+":"+string(password))
	return nil
}

func (f *fakeSession) Login(ctx context.Context, username string, password []byte, rememberMe bool, prompt services.SecondFactorPrompt) error {
	f.loginUser, f.loginPW, f.remember = username, string(password), rememberMe
	if f.loginErr != nil {
		return f.loginErr
	}
	if prompt != nil && f.code == "" {
		factor, code, err := prompt(ctx)
		if err != nil {
			return err
		}
		f.factor, f.code = factor, code
	}
	f.state = session.Unlocked
	f.status.Username = username
	return nil
}

func (f *fakeSession) Unlock(_ context.Context, password []byte) error {
	f.unlockPW = string(password)
	if f.unlockErr != nil {
		return f.unlockErr
	}
	f.state = session.Unlocked
	return nil
}

func (f *fakeSession) UnlockWithKeyStore(context.Context) error {
	f.keyStoreCalled = true
	if f.keyStoreErr != nil {
		return f.keyStoreErr
	}
	f.state = session.Unlocked
	return nil
}

func (f *fakeSession) RememberKey(context.Context) error {
	if f.rememberErr != nil {
		return f.rememberErr
	}
	f.status.KeyStored = true
	return nil
}

func (f *fakeSession) Lock()  { f.locked++; f.state = session.Locked }
func (f *fakeSession) Touch() { f.touched++ }

func (f *fakeSession) Logout(context.Context) error {
	f.loggedOut = true
	f.state = session.Locked
	f.status = session.Status{}
	return nil
}

func (f *fakeSession) AddCredential(_ context.Context, c *models.Credential) error {
	if f.addErr != nil {
		return f.addErr
	}
	c.ID = "cred-1"
	f.added = append(f.added, *c)
	return nil
}

func (f *fakeSession) DeleteCredential(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSession) Credentials(context.Context) ([]models.Credential, error) {
	if f.state != session.Unlocked {
		return nil, session.ErrLocked
	}
	return f.credentials, nil
}

func (f *fakeSession) CopyPassword(_ context.Context, id string) (uint64, error) {
	if f.copyErr != nil {
		return 0, f.copyErr
	}
	f.copied = append(f.copied, id)
	return uint64(len(f.copied)), nil
}

func (f *fakeSession) KeyPairs() ([]keyvault.KeyPair, error) { return f.pairs, nil }

func (f *fakeSession) RotateKey(context.Context) (string, error) { return f.rotatedID, nil }

func (f *fakeSession) ChangePassword(_ context.Context, newPassword []byte) error {
	f.newPW = string(newPassword)
	return nil
}

func (f *fakeSession) Schema(context.Context) (session.SchemaInfo, error) { return f.schema, nil }

func (f *fakeSession) Emails(context.Context) ([]envelope.Result, error) { return f.emails, nil }

func (f *fakeSession) Attachment(context.Context, string, string) (*envelope.Attachment, error) {
	return f.attachment, f.attachmentErr
}

func (f *fakeSession) DeleteEmail(_ context.Context, id string) error {
	f.deletedEmails = append(f.deletedEmails, id)
	return nil
}

type fakePinger struct {
	err    error
	pings  int
	closed bool
}

func (p *fakePinger) Ping(context.Context) error  { p.pings++; return p.err }
func (p *fakePinger) Close(context.Context) error { p.closed = true; return nil }

// newTestApp builds an App over fakes reading input lines from in.
func newTestApp(t *testing.T, s *fakeSession, in ...string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	input := strings.Join(in, "\n")
	if len(in) > 0 {
		input += "\n"
	}
	return &App{
		config:      &config.Config{ClipboardClear: 10 * time.Second, IdleTimeout: time.Minute, OnlineCheckInterval: time.Hour},
		session:     s,
		server:      &fakePinger{},
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         out,
		logger:      logging.Nop{},
		downloadDir: t.TempDir(),
	}, out
}

// stubPasswords makes getPassword return pws in order.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(pws) == 0 {
			return nil, io.EOF
		}
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
}
