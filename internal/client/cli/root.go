package cli

import (
	"context"
)

func (a *App) getStatus() string {
	if a.isAdmin() {
		return " (admin)"
	}
	return ""
}

// Root greets the user and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	printlnFn(a.out, "Welcome to Trading Professor CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
