package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	st := a.session.Status(ctx)

	var parts []string
	if st.Username != "" {
		parts = append(parts, st.Username, st.State.String())
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root prints the greeting, starts the connectivity watcher and runs the
// REPL until the user leaves. The vault is locked on the way out.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to AliasKeeper CLI (type 'help' for commands)")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if st := a.session.Status(ctx); st.Username != "" {
		a.printf("Logged in as %s, use unlock to open the vault\n", st.Username)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)

	a.session.Lock()
}
