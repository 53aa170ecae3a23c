package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
	"github.com/dmitrijs2005/aliaskeeper/internal/srp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	_ "modernc.org/sqlite"
)

func setupCache(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

type account struct {
	req       *pb.RegisterRequest
	secret    string
	twoFactor string
}

// fakeServer plays the server side of SRP and keeps one vault per run.
type fakeServer struct {
	accounts map[string]*account

	badServerProof bool
	loggedOut      bool
	closed         bool
	pingErr        error
	factors        []client.Factor

	vault     *pb.VaultResponse
	saves     []*pb.SaveVaultRequest
	saveErrs  []error
	changePwd *pb.ChangePasswordRequest

	emails   []*pb.Email
	deleted  []string
	urlCalls int
}

var _ client.Client = (*fakeServer)(nil)

func newFakeServer() *fakeServer {
	return &fakeServer{accounts: map[string]*account{}, vault: &pb.VaultResponse{}}
}

func (f *fakeServer) Close() error                   { f.closed = true; return nil }
func (f *fakeServer) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeServer) Register(_ context.Context, req *pb.RegisterRequest) error {
	if _, ok := f.accounts[req.Username]; ok {
		return common.ErrorAlreadyExists
	}
	f.accounts[req.Username] = &account{req: proto.Clone(req).(*pb.RegisterRequest)}
	return nil
}

func (f *fakeServer) Login(_ context.Context, username string) (*pb.LoginResponse, error) {
	a, ok := f.accounts[username]
	if !ok {
		return nil, common.ErrAuthenticationFailed
	}
	eph, err := srp.Default.GenerateServerEphemeral(a.req.Verifier)
	if err != nil {
		return nil, err
	}
	a.secret = eph.Secret
	return &pb.LoginResponse{
		Salt:               a.req.Salt,
		ServerEphemeral:    eph.Public,
		EncryptionType:     a.req.EncryptionType,
		EncryptionSettings: a.req.EncryptionSettings,
	}, nil
}

func (f *fakeServer) Validate(_ context.Context, req *pb.ValidateRequest, factor client.Factor) (*pb.ValidateResponse, error) {
	f.factors = append(f.factors, factor)
	a := f.accounts[req.Username]
	sess, err := srp.Default.DeriveServerSession(a.secret, req.ClientPublicEphemeral, a.req.Salt, req.Username, a.req.Verifier, req.ClientSessionProof)
	if err != nil {
		return nil, common.ErrAuthenticationFailed
	}
	if a.twoFactor != "" {
		if factor == client.FactorPassword {
			return &pb.ValidateResponse{RequiresTwoFactor: true}, nil
		}
		if req.Code != a.twoFactor {
			return nil, common.ErrAuthenticationFailed
		}
	}
	proof := sess.Proof
	if f.badServerProof {
		proof = "00"
	}
	return &pb.ValidateResponse{ServerSessionProof: proof, AccessToken: "A", RefreshToken: "R"}, nil
}

func (f *fakeServer) Logout(context.Context) error {
	f.loggedOut = true
	return nil
}

func (f *fakeServer) GetVault(context.Context) (*pb.VaultResponse, error) {
	return proto.Clone(f.vault).(*pb.VaultResponse), nil
}

func (f *fakeServer) SaveVault(_ context.Context, req *pb.SaveVaultRequest) (*pb.SaveVaultResponse, error) {
	if len(f.saveErrs) > 0 {
		err := f.saveErrs[0]
		f.saveErrs = f.saveErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if req.CurrentRevisionNumber != f.vault.VaultRevisionNumber {
		return nil, common.ErrRevisionConflict
	}
	f.saves = append(f.saves, req)
	f.vault.Vault = req.Blob
	f.vault.Version = req.Version
	f.vault.VaultRevisionNumber++
	return &pb.SaveVaultResponse{NewRevisionNumber: f.vault.VaultRevisionNumber}, nil
}

func (f *fakeServer) ChangePassword(_ context.Context, req *pb.ChangePasswordRequest) (*pb.SaveVaultResponse, error) {
	if req.CurrentRevisionNumber != f.vault.VaultRevisionNumber {
		return nil, common.ErrRevisionConflict
	}
	f.changePwd = req
	f.vault.Vault = req.Blob
	f.vault.VaultRevisionNumber++
	f.vault.Salt = req.Salt
	f.vault.EncryptionType = req.EncryptionType
	f.vault.EncryptionSettings = req.EncryptionSettings
	return &pb.SaveVaultResponse{NewRevisionNumber: f.vault.VaultRevisionNumber}, nil
}

func (f *fakeServer) ListEmails(context.Context) ([]*pb.Email, error) { return f.emails, nil }

func (f *fakeServer) DeleteEmail(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeServer) AttachmentURL(_ context.Context, emailID, attachmentID string) (string, error) {
	f.urlCalls++
	return "https://blobs/" + emailID + "/" + attachmentID, nil
}
