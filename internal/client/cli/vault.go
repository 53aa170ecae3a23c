package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) Status(ctx context.Context) error {
	st := a.session.Status(ctx)

	user := st.Username
	if user == "" {
		user = "-"
	}
	mode := a.Mode()
	if mode == "" {
		mode = "unknown"
	}

	a.printf("User:          %s\n", user)
	a.printf("Vault:         %s\n", st.State)
	a.printf("Connection:    %s\n", mode)
	if st.Revision > 0 {
		a.printf("Revision:      %d\n", st.Revision)
	}
	a.printf("Idle timeout:  %s\n", st.IdleTimeout)
	a.printf("Key stored:    %t\n", st.KeyStored)
	return nil
}

// Add asks for a new credential and saves it to the vault.
func (a *App) Add(ctx context.Context) error {
	var c models.Credential
	var err error

	if c.Service.Name, err = getSimpleText(a.reader, "Service name", a.out); err != nil {
		return err
	}
	if c.Service.URL, err = getSimpleText(a.reader, "Service URL (optional)", a.out); err != nil {
		return err
	}
	if c.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if c.Alias.Email, err = getSimpleText(a.reader, "Alias email (optional)", a.out); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	pw, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	c.Password = string(pw)
	common.WipeByteArray(pw)

	if c.Notes, err = GetMultiline(a.reader, "Notes", a.out); err != nil {
		return err
	}

	if err := a.session.AddCredential(ctx, &c); err != nil {
		return err
	}
	a.printf("Saved %s\n", c.ID)
	return nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.session.Credentials(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No credentials yet, use add")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERVICE\tUSERNAME\tALIAS\tUPDATED")
	for _, c := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Service.Name, dash(c.Username), dash(c.Alias.Email), formatTime(c.UpdatedAt))
	}
	return w.Flush()
}

func (a *App) Copy(ctx context.Context, id string) error {
	if _, err := a.session.CopyPassword(ctx, id); err != nil {
		return err
	}
	a.printf("Password copied, the clipboard is cleared in %s\n", a.config.ClipboardClear)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	ok, err := GetConfirmation(a.reader, "Delete credential "+id+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.session.DeleteCredential(ctx, id); err != nil {
		return err
	}
	a.println("Deleted")
	return nil
}

// Keys lists the vault's email encryption key pairs.
func (a *App) Keys(ctx context.Context) error {
	pairs, err := a.session.KeyPairs()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRIMARY\tCREATED")
	for _, kp := range pairs {
		primary := ""
		if kp.IsPrimary {
			primary = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kp.ID, primary, formatTime(kp.CreatedAt))
	}
	return w.Flush()
}

func (a *App) RotateKey(ctx context.Context) error {
	id, err := a.session.RotateKey(ctx)
	if err != nil {
		return err
	}
	a.printf("New primary key %s, new email will be encrypted for it\n", id)
	return nil
}

func (a *App) Schema(ctx context.Context) error {
	info, err := a.session.Schema(ctx)
	if err != nil {
		return err
	}
	a.printf("Schema revision %d (version %s), client supports %d (version %s)\n",
		info.Revision, dash(info.Version), info.Latest, info.LatestVersion)
	a.printf("Tables: %s\n", strings.Join(info.Tables, ", "))
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
