package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/admin"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/client"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/config"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/services"
	"github.com/dmitrijs2005/tradingprofessor/internal/logging"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

// fakeAPI implements client.Client for app tests.
type fakeAPI struct {
	client.Client

	mu sync.Mutex

	submitRes    *client.SubmitResult
	submitErr    error
	submitCalls  int
	lastEndpoint string
	lastFields   map[string]string
	lastFiles    []client.FilePart

	regsRaw   string
	paysRaw   string
	listCalls int

	statusErr error
	deleted   []string

	doc    *client.Document
	docErr error

	token string
}

func (f *fakeAPI) Submit(ctx context.Context, endpoint string, fields map[string]string, files []client.FilePart) (*client.SubmitResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitCalls++
	f.lastEndpoint, f.lastFields, f.lastFiles = endpoint, fields, files
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if f.submitRes == nil {
		return &client.SubmitResult{}, nil
	}
	return f.submitRes, nil
}

func (f *fakeAPI) ListRegistrations(ctx context.Context) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return json.RawMessage(f.regsRaw), nil
}

func (f *fakeAPI) ListPayments(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(f.paysRaw), nil
}

func (f *fakeAPI) UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) error {
	return f.statusErr
}

func (f *fakeAPI) DeleteRegistration(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) FetchFile(ctx context.Context, mode client.FileMode, id string, ft models.FileType) (*client.Document, error) {
	return f.doc, f.docErr
}

func (f *fakeAPI) FileURL(mode client.FileMode, id string, ft models.FileType) string {
	return "https://api.test/api/registration/" + string(mode) + "/" + id + "/" + string(ft)
}

func (f *fakeAPI) SetToken(token string) { f.token = token }

type memSaver struct {
	saved map[string][]byte
}

func (s *memSaver) Save(_ context.Context, name string, data []byte) (string, error) {
	if s.saved == nil {
		s.saved = map[string][]byte{}
	}
	s.saved[name] = data
	return "/downloads/" + name, nil
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

// newTestApp builds an App reading the given lines and writing to a buffer.
func newTestApp(t *testing.T, api *fakeAPI, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg := testConfig()
	a := &App{
		config: cfg,
		log:    logging.Nop(),
		api:    api,
		tokens: api,
		submit: services.NewSubmissionService(api, nil),
		reader: bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n")),
		out:    out,
	}
	a.table = admin.NewTable(api, admin.Options{
		CourseCount: 3,
		Confirmer:   &promptConfirmer{app: a},
		Saver:       &memSaver{},
		OnNotify:    a.notify,
		Now:         func() time.Time { return time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC) },
	})
	t.Cleanup(a.table.Close)
	return a, out
}

func stubReadDocument(t *testing.T) {
	t.Helper()
	orig := readDocument
	readDocument = func(path string) (string, string, []byte, error) {
		name := path[strings.LastIndex(path, "/")+1:]
		return name, "image/png", pngBytes, nil
	}
	t.Cleanup(func() { readDocument = orig })
}
