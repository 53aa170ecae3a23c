package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dmitrijs2005/aliaskeeper/internal/filex"
)

// Emails lists the mail received on the user's aliases. Messages that
// cannot be decrypted are listed with the reason.
func (a *App) Emails(ctx context.Context) error {
	list, err := a.session.Emails(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.println("No emails")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECEIVED\tTO\tFROM\tSUBJECT")
	for _, r := range list {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t-\t(cannot decrypt: %s)\n", r.ID, describe(r.Err))
			continue
		}
		m := r.Email
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, formatTime(m.DateReceived), m.To, m.From, dash(m.Subject))
		for _, att := range m.Attachments {
			fmt.Fprintf(w, "\t\t\t  attachment %s\t%s\n", att.ID, att.Filename)
		}
	}
	return w.Flush()
}

// SaveAttachment decrypts an attachment into the cache directory.
func (a *App) SaveAttachment(ctx context.Context, emailID, attachmentID string) error {
	att, err := a.session.Attachment(ctx, emailID, attachmentID)
	if err != nil {
		return err
	}

	name := filepath.Base(att.Filename)
	if name == "." || name == string(filepath.Separator) {
		name = attachmentID
	}
	path := filepath.Join(a.downloadDir, name)

	err = filex.WritePrivateFile(path, att.Content)
	if errors.Is(err, os.ErrExist) {
		path = filepath.Join(a.downloadDir, attachmentID+"-"+name)
		err = filex.WritePrivateFile(path, att.Content)
	}
	if err != nil {
		return err
	}
	a.printf("Saved %d bytes to %s\n", len(att.Content), path)
	return nil
}

func (a *App) DeleteEmail(ctx context.Context, id string) error {
	ok, err := GetConfirmation(a.reader, "Delete email "+id+"?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.session.DeleteEmail(ctx, id); err != nil {
		return err
	}
	a.println("Deleted")
	return nil
}
