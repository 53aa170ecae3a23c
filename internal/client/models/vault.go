// Package models defines the rows kept inside the decrypted vault database.
package models

import (
	"errors"
	"strings"
	"time"
)

var ErrServiceNameRequired = errors.New("service name is required")

// Alias is the identity a credential was created under. Email is the alias
// address the server routes mail for.
type Alias struct {
	ID        string
	FirstName string
	LastName  string
	NickName  string
	BirthDate time.Time
	Email     string
}

type Service struct {
	ID   string
	Name string
	URL  string
}

// Credential is one login: the service, the alias used and the current
// password.
type Credential struct {
	ID        string
	Service   Service
	Alias     Alias
	Username  string
	Password  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Credential) Validate() error {
	if strings.TrimSpace(c.Service.Name) == "" {
		return ErrServiceNameRequired
	}
	return nil
}

// Title is the label shown in listings.
func (c *Credential) Title() string {
	if c.Username == "" {
		return c.Service.Name
	}
	return c.Service.Name + " (" + c.Username + ")"
}
