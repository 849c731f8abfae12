package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/admin"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/catalogue"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/client"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/config"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/form"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/services"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/validate"
	"github.com/dmitrijs2005/tradingprofessor/internal/logging"
)

type tokenSetter interface {
	SetToken(token string)
}

type App struct {
	config *config.Config
	log    logging.Logger
	api    client.Client
	tokens tokenSetter
	submit services.SubmissionService
	table  *admin.Table
	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	hasToken bool
	loaded   bool
}

func NewApp(c *config.Config, log logging.Logger) *App {
	api := client.NewRESTClient(c.APIBaseURL, c.RequestTimeout, log)
	if c.AdminToken != "" {
		api.SetToken(c.AdminToken)
	}

	a := &App{
		config:   c,
		log:      log,
		api:      api,
		tokens:   api,
		submit:   services.NewSubmissionService(api, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		hasToken: c.AdminToken != "",
	}
	a.table = admin.NewTable(api, admin.Options{
		NotificationTTL: c.NotificationTTL,
		CourseCount:     catalogue.Count(),
		Confirmer:       &promptConfirmer{app: a},
		Saver:           &diskSaver{dir: c.DownloadDir},
		Log:             log,
		OnNotify:        a.notify,
	})
	return a
}

// Run blocks in the REPL and releases the admin view on exit.
func (a *App) Run(ctx context.Context) {
	defer a.table.Close()
	a.Root(ctx)
}

func (a *App) isAdmin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasToken
}

func (a *App) formOptions(presets map[form.Field]string) form.Options {
	return form.Options{
		Ages:    validate.AgeBounds{Min: a.config.MinAge, Max: a.config.MaxAge},
		Presets: presets,
	}
}

func (a *App) notify(n admin.Notification) {
	printlnFn(a.out, "["+n.Level.String()+"] "+n.Message)
}
