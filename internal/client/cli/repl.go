package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Fprintln

const (
	helpPublic = "Available commands: courses, enroll [course], copytrade, token, help, exit"
	helpAdmin  = "Admin commands: registrations [query] [status], payments [query], stats, refresh,\n" +
		"  status <id> <status>, delete <id>, view <id> <aadhar|signature>, close,\n" +
		"  download <id> <aadhar|signature>"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAdmin() bool
	Courses(ctx context.Context) error
	Enroll(ctx context.Context, course string) error
	CopyTrade(ctx context.Context) error
	Token(ctx context.Context) error
	Registrations(ctx context.Context, args []string) error
	Payments(ctx context.Context, query string) error
	Stats(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	View(ctx context.Context, id, fileType string) error
	CloseFile(ctx context.Context) error
	Download(ctx context.Context, id, fileType string) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. Handler errors are printed and the loop goes on.
//
// Commands
//
//	courses                           list the course phases
//	enroll [course]                   registration wizard, optionally preset
//	copytrade                         copy-trading application wizard
//	token                             enter the admin token
//	registrations [query] [status]    filtered registrations table
//	payments [query]                  filtered payments table
//	stats                             dashboard counters
//	refresh                           reload registrations and payments
//	status <id> <status>              change a registration status
//	delete <id>                       delete a registration (asks first)
//	view <id> <type>                  open a document in the viewer
//	close                             close the viewer
//	download <id> <type>              save a document to the download dir
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "tp%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(w, helpPublic)
			if a.isAdmin() {
				printlnFn(w, helpAdmin)
			}

		case "courses":
			cmdErr = a.Courses(ctx)

		case "enroll":
			cmdErr = a.Enroll(ctx, strings.Join(args, " "))

		case "copytrade":
			cmdErr = a.CopyTrade(ctx)

		case "token":
			cmdErr = a.Token(ctx)

		case "registrations", "regs":
			cmdErr = a.Registrations(ctx, args)

		case "payments":
			cmdErr = a.Payments(ctx, strings.Join(args, " "))

		case "stats":
			cmdErr = a.Stats(ctx)

		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "status":
			if len(args) != 2 {
				printlnFn(w, "Usage: status <id> <pending|active|completed|cancelled>")
				continue
			}
			cmdErr = a.Status(ctx, args[0], args[1])

		case "delete":
			if len(args) != 1 {
				printlnFn(w, "Usage: delete <id>")
				continue
			}
			cmdErr = a.Delete(ctx, args[0])

		case "view":
			if len(args) != 2 {
				printlnFn(w, "Usage: view <id> <aadhar|signature>")
				continue
			}
			cmdErr = a.View(ctx, args[0], args[1])

		case "close":
			cmdErr = a.CloseFile(ctx)

		case "download":
			if len(args) != 2 {
				printlnFn(w, "Usage: download <id> <aadhar|signature>")
				continue
			}
			cmdErr = a.Download(ctx, args[0], args[1])

		case "exit", "quit":
			printlnFn(w, "Bye!")
			return

		default:
			printlnFn(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(w, "Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
