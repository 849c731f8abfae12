package admin

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/client"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/common"
	"github.com/dmitrijs2005/tradingprofessor/internal/filex"
	"github.com/dmitrijs2005/tradingprofessor/internal/logging"
	"github.com/dmitrijs2005/tradingprofessor/internal/netx"
	"golang.org/x/sync/errgroup"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Saver persists downloaded bytes and returns where they went.
type Saver interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

var (
	ErrDeclined   = errors.New("action declined")
	ErrViewClosed = errors.New("view closed")
	ErrNoSaver    = errors.New("no download target configured")
)

// package-level seams for tests
var (
	writeTemp     = filex.WriteTemp
	detectContent = filex.DetectContentType
	extensionFor  = filex.ExtensionFor
)

type Options struct {
	NotificationTTL time.Duration
	CourseCount     int
	Confirmer       Confirmer
	Saver           Saver
	Log             logging.Logger
	// OnNotify mirrors every notification, e.g. to print it.
	OnNotify func(Notification)
	// Now defaults to time.Now; used for fallback file names.
	Now func() time.Time
}

// Table is the admin view over registrations and payments.
type Table struct {
	client client.Client
	opts   Options
	log    logging.Logger
	notes  *Notifier
	modal  FileModal

	life   context.Context
	cancel context.CancelFunc

	mu            sync.RWMutex
	registrations []models.Registration
	payments      []models.Payment
	loadErr       string
	regSeq        uint64
	paySeq        uint64
}

func NewTable(c client.Client, opts Options) *Table {
	if opts.Log == nil {
		opts.Log = logging.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	life, cancel := context.WithCancel(context.Background())
	return &Table{
		client:        c,
		opts:          opts,
		log:           opts.Log.With("component", "admin"),
		notes:         NewNotifier(opts.NotificationTTL, opts.Log, opts.OnNotify),
		life:          life,
		cancel:        cancel,
		registrations: []models.Registration{},
		payments:      []models.Payment{},
	}
}

// Close ends the view: in-flight requests are canceled, their results
// dropped and the open document released.
func (t *Table) Close() {
	t.cancel()
	t.modal.Close()
	t.notes.Dismiss()
}

func (t *Table) Notifier() *Notifier { return t.notes }

// bind derives a request context that also ends when the view closes.
func (t *Table) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(t.life, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (t *Table) alive() bool { return t.life.Err() == nil }

// LoadRegistrations replaces the registration snapshot. On failure the
// snapshot becomes empty and the dashboard error is set.
func (t *Table) LoadRegistrations(ctx context.Context) error {
	t.mu.Lock()
	t.regSeq++
	seq := t.regSeq
	t.mu.Unlock()

	ctx, done := t.bind(ctx)
	defer done()

	raw, err := t.client.ListRegistrations(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.alive() {
		return ErrViewClosed
	}
	if seq != t.regSeq {
		return nil
	}
	if err != nil {
		t.registrations = []models.Registration{}
		t.loadErr = "Failed to load registrations: " + err.Error()
		t.log.Warn(ctx, "load registrations", "error", err)
		return err
	}
	t.registrations = NormalizeCollection[models.Registration](raw, "registrations")
	t.loadErr = ""
	t.log.Debug(ctx, "registrations loaded", "count", len(t.registrations))
	return nil
}

// LoadPayments replaces the payment snapshot, falling back to empty.
func (t *Table) LoadPayments(ctx context.Context) error {
	t.mu.Lock()
	t.paySeq++
	seq := t.paySeq
	t.mu.Unlock()

	ctx, done := t.bind(ctx)
	defer done()

	raw, err := t.client.ListPayments(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.alive() {
		return ErrViewClosed
	}
	if seq != t.paySeq {
		return nil
	}
	if err != nil {
		t.payments = []models.Payment{}
		t.log.Warn(ctx, "load payments", "error", err)
		return err
	}
	t.payments = NormalizeCollection[models.Payment](raw, "payments")
	t.log.Debug(ctx, "payments loaded", "count", len(t.payments))
	return nil
}

// Refresh reloads both collections concurrently and always reports
// completion; each collection falls back to empty on its own failure.
func (t *Table) Refresh(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		_ = t.LoadRegistrations(ctx)
		return nil
	})
	g.Go(func() error {
		_ = t.LoadPayments(ctx)
		return nil
	})
	_ = g.Wait()

	if t.alive() {
		t.notes.Success(ctx, "Data refreshed successfully")
	}
}

// LoadError is the dashboard error from the last registration fetch.
func (t *Table) LoadError() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.loadErr
}

func (t *Table) Registrations(f RegistrationFilter) []models.Registration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return FilterRegistrations(t.registrations, f)
}

func (t *Table) Payments(query string) []models.Payment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return FilterPayments(t.payments, query)
}

// Registration looks a record up by id in the snapshot.
func (t *Table) Registration(id string) (models.Registration, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := slices.IndexFunc(t.registrations, func(r models.Registration) bool { return r.ID == id })
	if i < 0 {
		return models.Registration{}, false
	}
	return t.registrations[i], true
}

func (t *Table) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return ComputeStats(t.registrations, t.payments, t.opts.CourseCount)
}

// UpdateStatus changes one registration's status on the backend and then
// in the snapshot. A failure leaves the snapshot untouched.
func (t *Table) UpdateStatus(ctx context.Context, id, status string) error {
	st, err := models.ParseRegistrationStatus(status)
	if err != nil {
		t.notes.Error(ctx, "Invalid status: "+status)
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	ctx, done := t.bind(ctx)
	defer done()

	if err := t.client.UpdateRegistrationStatus(ctx, id, st); err != nil {
		if t.alive() {
			t.notes.Error(ctx, "Failed to update status")
		}
		return err
	}

	t.mu.Lock()
	if !t.alive() {
		t.mu.Unlock()
		return ErrViewClosed
	}
	for i := range t.registrations {
		if t.registrations[i].ID == id {
			t.registrations[i].Status = st
		}
	}
	t.mu.Unlock()

	t.notes.Success(ctx, "Status updated to "+string(st))
	return nil
}

// Delete removes a registration after explicit confirmation. Without
// confirmation no request is made and ErrDeclined is returned.
func (t *Table) Delete(ctx context.Context, id string) error {
	if t.opts.Confirmer == nil || !t.opts.Confirmer.Confirm(ctx, "Are you sure you want to delete this registration?") {
		return ErrDeclined
	}

	ctx, done := t.bind(ctx)
	defer done()

	if err := t.client.DeleteRegistration(ctx, id); err != nil {
		if t.alive() {
			t.notes.Error(ctx, "Failed to delete registration")
		}
		return err
	}

	t.mu.Lock()
	if !t.alive() {
		t.mu.Unlock()
		return ErrViewClosed
	}
	t.registrations = slices.DeleteFunc(slices.Clone(t.registrations), func(r models.Registration) bool { return r.ID == id })
	t.mu.Unlock()

	t.notes.Success(ctx, "Registration deleted successfully")
	return nil
}

// ViewFile loads a document into the modal. Images and PDFs are copied to
// a local file for display; other types fall back to the external URL.
func (t *Table) ViewFile(ctx context.Context, id string, ft models.FileType) ModalState {
	token := t.modal.Open(ft.Label(), id, ft)
	url := t.client.FileURL(client.FileView, id, ft)

	ctx, done := t.bind(ctx)
	defer done()

	doc, err := t.client.FetchFile(ctx, client.FileView, id, ft)
	if err != nil {
		msg := "Failed to view file"
		var re *client.ResourceError
		if errors.As(err, &re) && re.Message != "" {
			msg = re.Message
		}
		if t.modal.Fail(token, msg, url) {
			t.notes.Error(ctx, msg)
		}
		return t.modal.State()
	}

	ct := netx.MediaType(doc.ContentType)
	if ct == "" || ct == "application/octet-stream" {
		ct = detectContent(doc.Data)
	}

	display := DisplayExternal
	switch {
	case netx.IsImage(ct):
		display = DisplayImage
	case netx.IsPDF(ct):
		display = DisplayPDF
	}

	var path string
	if display != DisplayExternal {
		path, err = writeTemp(extensionFor(ct), doc.Data)
		if err != nil {
			t.log.Warn(ctx, "preview copy", "error", err)
			display, path = DisplayExternal, ""
		}
	}

	t.modal.Resolve(token, display, ct, path, firstNonEmpty(doc.URL, url))
	return t.modal.State()
}

func (t *Table) CloseFile() { t.modal.Close() }

func (t *Table) FileState() ModalState { return t.modal.State() }

// DownloadFile fetches a document and hands it to the Saver. Empty or
// failed fetches never reach the Saver.
func (t *Table) DownloadFile(ctx context.Context, id string, ft models.FileType) (string, error) {
	if t.opts.Saver == nil {
		return "", ErrNoSaver
	}

	ctx, done := t.bind(ctx)
	defer done()

	doc, err := t.client.FetchFile(ctx, client.FileDownload, id, ft)
	if err == nil && len(doc.Data) == 0 {
		err = &client.ResourceError{Message: "File is empty"}
	}
	if err != nil {
		if t.alive() {
			t.notes.Error(ctx, "Download failed: "+err.Error())
		}
		return "", err
	}
	if !t.alive() {
		return "", ErrViewClosed
	}

	name := doc.Filename
	if name == "" {
		name = FallbackFilename(ft, id, t.opts.Now(), doc.ContentType)
	}

	path, err := t.opts.Saver.Save(ctx, name, doc.Data)
	if err != nil {
		t.notes.Error(ctx, "Download failed: "+err.Error())
		return "", err
	}

	t.notes.Success(ctx, "Downloaded "+name)
	return path, nil
}

// FallbackFilename is {fileType}_{id}_{YYYY-MM-DD} plus an extension
// derived from the content type when one is known.
func FallbackFilename(ft models.FileType, id string, now time.Time, contentType string) string {
	name := fmt.Sprintf("%s_%s_%s", ft, id, now.Format(common.DateLayout))
	return name + extensionFor(netx.MediaType(contentType))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
