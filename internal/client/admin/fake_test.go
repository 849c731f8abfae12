package admin

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/client"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
)

// fakeClient implements client.Client for admin table tests.
type fakeClient struct {
	client.Client

	regsRaw string
	regsErr error
	paysRaw string
	paysErr error
	// gate, if set, blocks list calls until closed
	gate chan struct{}

	statusErr   error
	statusCalls atomic.Int32
	lastStatus  models.RegistrationStatus

	deleteErr   error
	deleteCalls atomic.Int32

	doc      *client.Document
	docErr   error
	docCalls atomic.Int32

	mu sync.Mutex
}

func (f *fakeClient) wait(ctx context.Context) error {
	if f.gate == nil {
		return nil
	}
	select {
	case <-f.gate:
		return nil
	case <-ctx.Done():
		return &client.NetworkError{Op: "list", Err: ctx.Err()}
	}
}

func (f *fakeClient) ListRegistrations(ctx context.Context) (json.RawMessage, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.regsErr != nil {
		return nil, f.regsErr
	}
	return json.RawMessage(f.regsRaw), nil
}

func (f *fakeClient) ListPayments(ctx context.Context) (json.RawMessage, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.paysErr != nil {
		return nil, f.paysErr
	}
	return json.RawMessage(f.paysRaw), nil
}

func (f *fakeClient) UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) error {
	f.statusCalls.Add(1)
	f.mu.Lock()
	f.lastStatus = status
	f.mu.Unlock()
	return f.statusErr
}

func (f *fakeClient) DeleteRegistration(ctx context.Context, id string) error {
	f.deleteCalls.Add(1)
	return f.deleteErr
}

func (f *fakeClient) FetchFile(ctx context.Context, mode client.FileMode, id string, ft models.FileType) (*client.Document, error) {
	f.docCalls.Add(1)
	return f.doc, f.docErr
}

func (f *fakeClient) FileURL(mode client.FileMode, id string, ft models.FileType) string {
	return "https://api.test/api/registration/" + string(mode) + "/" + id + "/" + string(ft)
}

type fakeConfirmer struct {
	answer bool
	asked  int
}

func (c *fakeConfirmer) Confirm(ctx context.Context, prompt string) bool {
	c.asked++
	return c.answer
}

type fakeSaver struct {
	calls int
	name  string
	data  []byte
	err   error
}

func (s *fakeSaver) Save(ctx context.Context, name string, data []byte) (string, error) {
	s.calls++
	s.name, s.data = name, data
	return "/downloads/" + name, s.err
}

const registrationsJSON = `{"success":true,"data":{"registrations":[
	{"_id":"r1","firstName":"Asha","lastName":"Rao","email":"asha@example.com","phone":"9876543210","courseName":"Phase 1","status":"pending"},
	{"_id":"r2","name":"Ravi Kumar","email":"ravi@example.in","phone":"9123456789","course":"Phase 2","status":"active"},
	{"id":"r3","firstName":"Meera","lastName":"Iyer","email":"meera@mail.com","phone":"9000000001","courseName":"Phase 3","status":"completed"}
]}}`

const paymentsJSON = `{"payments":[
	{"_id":"p1","userName":"Asha Rao","email":"asha@example.com","amount":19999,"paymentStatus":"success"},
	{"_id":"p2","name":"Ravi Kumar","email":"ravi@example.in","amount":"34999.50","status":"paid"},
	{"_id":"p3","name":"Meera Iyer","email":"meera@mail.com","amount":57999,"status":"failed"},
	{"_id":"p4","name":"Anon","amount":1000,"status":"pending"}
]}`
