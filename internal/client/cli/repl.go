package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a stub.
type execIface interface {
	isUnlocked() bool
	Touch()

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Unlock(ctx context.Context) error
	Lock(ctx context.Context) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error

	Add(ctx context.Context) error
	List(ctx context.Context) error
	Copy(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	Keys(ctx context.Context) error
	RotateKey(ctx context.Context) error
	RememberKey(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Schema(ctx context.Context) error

	Emails(ctx context.Context) error
	SaveAttachment(ctx context.Context, emailID, attachmentID string) error
	DeleteEmail(ctx context.Context, id string) error
}

const (
	helpLocked   = "Available commands: register, login, unlock, status, logout, exit"
	helpUnlocked = "Available commands: add, (l)ist, copy <id>, delete <id>, emails, attachment <email id> <attachment id>, " +
		"delete-email <id>, keys, rotate-key, remember-key, passwd, schema, status, lock, logout, exit"
)

// runREPL reads commands from reader until EOF, exit or quit. Command
// errors are printed and the loop goes on. Every command counts as
// activity for the idle timer.
//
// The prompts of the commands read from the same reader, so a buffered
// scanner must not sit in between.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ak %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		a.Touch()

		err = nil
		switch cmd {
		case "help":
			if a.isUnlocked() {
				printlnFn(helpUnlocked)
			} else {
				printlnFn(helpLocked)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "unlock":
			err = a.Unlock(ctx)
		case "lock":
			err = a.Lock(ctx)
		case "status":
			err = a.Status(ctx)
		case "logout":
			err = a.Logout(ctx)

		case "add":
			err = a.Add(ctx)
		case "l", "list":
			err = a.List(ctx)
		case "copy":
			if len(args) != 1 {
				printlnFn("Usage: copy <id>")
				continue
			}
			err = a.Copy(ctx, args[0])
		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "keys":
			err = a.Keys(ctx)
		case "rotate-key":
			err = a.RotateKey(ctx)
		case "remember-key":
			err = a.RememberKey(ctx)
		case "passwd":
			err = a.ChangePassword(ctx)
		case "schema":
			err = a.Schema(ctx)

		case "emails":
			err = a.Emails(ctx)
		case "attachment":
			if len(args) != 2 {
				printlnFn("Usage: attachment <email id> <attachment id>")
				continue
			}
			err = a.SaveAttachment(ctx, args[0], args[1])
		case "delete-email":
			if len(args) != 1 {
				printlnFn("Usage: delete-email <id>")
				continue
			}
			err = a.DeleteEmail(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}
