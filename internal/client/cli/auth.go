package cli

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/session"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errEmptyPassword    = errors.New("password must not be empty")
	errEmptyUsername    = errors.New("username must not be empty")
)

// newPassword reads a password twice. The caller wipes the result.
func (a *App) newPassword(prompt string) ([]byte, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return nil, err
	}
	again, err := getPassword(a.out, "Repeat "+strings.ToLower(prompt))
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(again)

	if len(pw) == 0 {
		return nil, errEmptyPassword
	}
	if subtle.ConstantTimeCompare(pw, again) != 1 {
		common.WipeByteArray(pw)
		return nil, errPasswordMismatch
	}
	return pw, nil
}

func (a *App) readUsername() (string, error) {
	username, err := getSimpleText(a.reader, "Enter username (email)", a.out)
	if err != nil {
		return "", err
	}
	if username == "" {
		return "", errEmptyUsername
	}
	return username, nil
}

// Register creates an account. The vault itself is created on first login.
func (a *App) Register(ctx context.Context) error {
	username, err := a.readUsername()
	if err != nil {
		return err
	}
	password, err := a.newPassword("Master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, username, password); err != nil {
		return err
	}
	a.println("Account created, use login to open your vault")
	return nil
}

// Login authenticates against the server and unlocks the vault. When the
// server cannot be reached and the same user is cached, the cached vault is
// opened instead.
func (a *App) Login(ctx context.Context) error {
	username, err := a.readUsername()
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetConfirmation(a.reader, "Stay signed in on this device?", a.out)
	if err != nil {
		return err
	}

	err = a.session.Login(ctx, username, password, remember, a.secondFactor)
	if errors.Is(err, client.ErrUnavailable) && a.session.Status(ctx).Username == username {
		a.println("Server unavailable, opening the cached vault")
		if err := a.session.Unlock(ctx, password); err != nil {
			return err
		}
		a.setMode(ModeOffline)
		a.println("Vault unlocked (offline)")
		return nil
	}
	if err != nil {
		return err
	}

	a.setMode(ModeOnline)
	a.println("Login successful")
	return nil
}

// secondFactor asks for a TOTP code or, failing that, a recovery code.
// Six digits are taken as a TOTP code.
func (a *App) secondFactor(ctx context.Context) (client.Factor, string, error) {
	code, err := getSimpleText(a.reader, "Enter the code from your authenticator app or a recovery code", a.out)
	if err != nil {
		return 0, "", err
	}
	if code == "" {
		return 0, "", common.ErrTwoFactorRequired
	}
	if isTotpCode(code) {
		return client.FactorTotp, code, nil
	}
	return client.FactorRecoveryCode, code, nil
}

func isTotpCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Unlock reopens the vault, trying the remembered key before asking for
// the master password.
func (a *App) Unlock(ctx context.Context) error {
	if a.isUnlocked() {
		a.println("Vault is already unlocked")
		return nil
	}

	if a.session.Status(ctx).KeyStored {
		err := a.session.UnlockWithKeyStore(ctx)
		if err == nil {
			a.println("Vault unlocked")
			return nil
		}
		a.println("Key store:", describe(err))
	}

	password, err := getPassword(a.out, "Master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Unlock(ctx, password); err != nil {
		return err
	}
	a.println("Vault unlocked")
	return nil
}

func (a *App) Lock(ctx context.Context) error {
	a.session.Lock()
	a.println("Vault locked")
	return nil
}

// Logout ends the server session and removes every local trace of the
// account.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

func (a *App) RememberKey(ctx context.Context) error {
	if err := a.session.RememberKey(ctx); err != nil {
		return err
	}
	a.println("Master key stored, unlock will use the key store")
	return nil
}

// ChangePassword re-encrypts the vault under a new master password. Other
// devices have to log in again afterwards.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isUnlocked() {
		return session.ErrLocked
	}
	password, err := a.newPassword("New master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.ChangePassword(ctx, password); err != nil {
		return err
	}
	a.println("Master password changed")
	return nil
}

func (a *App) Touch() {
	a.session.Touch()
}
