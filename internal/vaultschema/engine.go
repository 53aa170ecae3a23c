// Package vaultschema evolves the SQLite database stored inside the
// encrypted vault. It keeps the ordered migration chain, the complete
// schema for new vaults and the revision/version table, and applies them
// to a database handle.
//
// The current revision of a vault is stored in PRAGMA user_version.
// Revision 0 is an empty database.
package vaultschema

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	// ErrSchemaValidation means the database does not have the shape its
	// revision promises, or the revision itself is unknown.
	ErrSchemaValidation = errors.New("vault schema validation failed")
	ErrUnknownVersion   = errors.New("unknown vault version")
	ErrUnknownRevision  = errors.New("unknown vault revision")
)

// Script is one piece of DDL tagged with the revision it produces.
type Script struct {
	Revision    int
	Version     string
	Description string
	SQL         string
}

// Engine answers schema questions and applies migrations. It is immutable
// after construction and safe for concurrent use.
type Engine struct {
	steps    []Script
	versions []VaultVersion
	complete string
	tables   [][]string // tables[r] = sorted table set at revision r
}

// Default is the engine built from the embedded migrations.
var Default = mustNew(migrationsFS, history)

func mustNew(fsys fs.FS, h []step) *Engine {
	e, err := newEngine(fsys, h)
	if err != nil {
		panic(err)
	}
	return e
}

func newEngine(fsys fs.FS, h []step) (*Engine, error) {
	e := &Engine{tables: [][]string{nil}}
	var known []string

	for i, s := range h {
		if s.Revision != i+1 {
			return nil, fmt.Errorf("vaultschema: revision %d out of order at position %d", s.Revision, i)
		}
		b, err := fs.ReadFile(fsys, s.file)
		if err != nil {
			return nil, fmt.Errorf("vaultschema: read %s: %w", s.file, err)
		}
		e.steps = append(e.steps, Script{
			Revision:    s.Revision,
			Version:     s.Version,
			Description: s.Description,
			SQL:         string(b),
		})
		e.versions = append(e.versions, s.VaultVersion)

		known = append(known, s.creates...)
		set := append([]string(nil), known...)
		sort.Strings(set)
		e.tables = append(e.tables, set)
	}

	b, err := fs.ReadFile(fsys, completeFile)
	if err != nil {
		return nil, fmt.Errorf("vaultschema: read %s: %w", completeFile, err)
	}
	e.complete = string(b)
	return e, nil
}

// Latest returns the newest known revision.
func (e *Engine) Latest() int { return len(e.steps) }

// Versions returns the revision/version table, oldest first.
func (e *Engine) Versions() []VaultVersion {
	return append([]VaultVersion(nil), e.versions...)
}

// CreateVaultSQL returns the complete schema for a brand-new vault tagged
// with the latest revision.
func (e *Engine) CreateVaultSQL() Script {
	latest := e.versions[len(e.versions)-1]
	return Script{
		Revision:    latest.Revision,
		Version:     latest.Version,
		Description: "Complete schema",
		SQL:         e.complete,
	}
}

// UpgradeVaultSQL returns every step with current < revision <= target in
// ascending order. target defaults to Latest. The result is empty when
// current >= target.
func (e *Engine) UpgradeVaultSQL(current int, target ...int) ([]Script, error) {
	to := e.Latest()
	if len(target) > 0 {
		to = target[0]
	}
	if current < 0 || current > e.Latest() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRevision, current)
	}
	if to < 0 || to > e.Latest() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRevision, to)
	}
	if current >= to {
		return []Script{}, nil
	}
	return append([]Script(nil), e.steps[current:to]...), nil
}

// UpgradeToVersion is UpgradeVaultSQL with a semantic version target.
func (e *Engine) UpgradeToVersion(current int, version string) ([]Script, error) {
	to, err := e.RevisionForVersion(version)
	if err != nil {
		return nil, err
	}
	return e.UpgradeVaultSQL(current, to)
}

// RevisionForVersion translates "1.2.0" into its revision.
func (e *Engine) RevisionForVersion(version string) (int, error) {
	v := strings.TrimPrefix(strings.TrimSpace(version), "v")
	for _, vv := range e.versions {
		if vv.Version == v {
			return vv.Revision, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, version)
}

// VersionForRevision translates a revision into its VaultVersion.
// Revision 0 has no version.
func (e *Engine) VersionForRevision(revision int) (VaultVersion, error) {
	if revision < 1 || revision > e.Latest() {
		return VaultVersion{}, fmt.Errorf("%w: %d", ErrUnknownRevision, revision)
	}
	return e.versions[revision-1], nil
}

// ExpectedTables returns the sorted table set a vault at revision has.
func (e *Engine) ExpectedTables(revision int) ([]string, error) {
	if revision < 0 || revision > e.Latest() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRevision, revision)
	}
	return append([]string(nil), e.tables[revision]...), nil
}

// statements splits a script into single statements. Scripts contain no
// triggers, so a semicolon always ends a statement.
func statements(script string) []string {
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var out []string
	for _, s := range strings.Split(b.String(), ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
