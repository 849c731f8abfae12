package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/catalogue"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/form"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/common"
)

func (a *App) Courses(_ context.Context) error {
	for _, c := range catalogue.Phases() {
		a.printCourse(c)
	}
	b := catalogue.Bundle()
	printlnFn(a.out, "")
	a.printCourse(b)
	printlnFn(a.out, fmt.Sprintf("  Save %s", catalogue.FormatINR(b.Discount())))
	return nil
}

func (a *App) printCourse(c models.Course) {
	title := fmt.Sprintf("[%s] %s - %s", c.ID, c.Name, c.Subtitle)
	if c.Popular {
		title += " (most popular)"
	}
	printlnFn(a.out, title)
	printlnFn(a.out, fmt.Sprintf("  %s (was %s) | %s, %s | %s",
		catalogue.FormatINR(c.Price), catalogue.FormatINR(c.OriginalPrice), c.Duration, c.Sessions, c.Level))
	printlnFn(a.out, "  Topics: "+strings.Join(c.Topics, ", "))
}

// Enroll runs the registration form with courseName taken from the
// catalogue. Without an argument the user picks a course first.
func (a *App) Enroll(ctx context.Context, course string) error {
	if course == "" {
		_ = a.Courses(ctx)
		picked, err := getSimpleText(a.reader, "Choose a course (id or name)", a.out)
		if err != nil {
			return err
		}
		course = picked
	}

	c, ok := catalogue.Lookup(course)
	if !ok {
		return fmt.Errorf("%w: course %q", common.ErrNotFound, course)
	}
	a.log.Info(ctx, "enrollment started", "course", c.Name)

	fc := form.NewController(form.Registration(a.formOptions(map[form.Field]string{form.CourseName: c.Name})))
	printlnFn(a.out, "Enrolling in "+c.Name+" ("+catalogue.FormatINR(c.Price)+")")
	return a.runWizard(ctx, fc)
}

func (a *App) CopyTrade(ctx context.Context) error {
	a.log.Info(ctx, "copy trading application started")
	return a.runWizard(ctx, form.NewController(form.CopyTrading(a.formOptions(nil))))
}

var errNoToken = errors.New("admin token required, run 'token' first")

// Token asks for the admin token without echo. An empty token leaves
// admin mode.
func (a *App) Token(ctx context.Context) error {
	tok, err := getSecret("Admin token", a.out)
	if err != nil {
		return err
	}
	a.tokens.SetToken(tok)

	a.mu.Lock()
	a.hasToken = tok != ""
	a.loaded = false
	a.mu.Unlock()

	if tok == "" {
		printlnFn(a.out, "Admin token cleared.")
		return nil
	}
	return a.Refresh(ctx)
}
