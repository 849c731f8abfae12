package cli

import (
	"context"

	"github.com/dmitrijs2005/tradingprofessor/internal/filex"
)

// diskSaver stores downloads under dir without overwriting earlier files.
type diskSaver struct {
	dir string
}

func (s *diskSaver) Save(_ context.Context, name string, data []byte) (string, error) {
	dir, err := filex.EnsureSubdDir(s.dir)
	if err != nil {
		return "", err
	}
	return filex.SaveUnique(dir, name, data)
}

// promptConfirmer asks on the REPL input. Read errors count as a no.
type promptConfirmer struct {
	app *App
}

func (c *promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	ok, err := getYesNo(c.app.reader, prompt, c.app.out)
	return err == nil && ok
}
