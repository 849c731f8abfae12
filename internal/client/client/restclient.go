package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/common"
	"github.com/dmitrijs2005/tradingprofessor/internal/logging"
	"github.com/dmitrijs2005/tradingprofessor/internal/netx"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	pathRegistrations = "/registration/all"
	pathPayments      = "/payments/all"
	pathStatus        = "/registration/{id}/status"
	pathRegistration  = "/registration/{id}"
	pathFile          = "/api/registration/{mode}/{id}/{fileType}"
)

// RESTClient implements Client over HTTP.
type RESTClient struct {
	baseURL string
	rc      *resty.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient builds a client for baseURL. A zero timeout keeps the
// HTTP client default.
func NewRESTClient(baseURL string, timeout time.Duration, log logging.Logger) *RESTClient {
	if log == nil {
		log = logging.Nop()
	}
	baseURL = strings.TrimRight(baseURL, "/")

	c := &RESTClient{baseURL: baseURL, log: log}

	c.rc = resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(c.beforeRequest).
		OnAfterResponse(c.afterResponse).
		OnError(c.onError)
	if timeout > 0 {
		c.rc.SetTimeout(timeout)
	}

	return c
}

// SetToken replaces the admin bearer token. An empty token disables auth.
func (c *RESTClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *RESTClient) beforeRequest(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.SetHeader(common.RequestIDHeaderName, uuid.NewString())
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		r.SetAuthToken(token)
	}
	return nil
}

func (c *RESTClient) afterResponse(_ *resty.Client, resp *resty.Response) error {
	req := resp.Request
	c.log.Debug(req.Context(), "api call",
		"method", req.Method,
		"url", req.URL,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
		"bytes", len(resp.Body()),
		"request_id", req.Header.Get(common.RequestIDHeaderName),
	)
	return nil
}

func (c *RESTClient) onError(req *resty.Request, err error) {
	c.log.Warn(req.Context(), "api call failed",
		"method", req.Method,
		"url", req.URL,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"error", err,
	)
}

// envelope is the response body of mutating endpoints.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// decodeEnvelope parses a JSON body. ok is false for anything that is not
// a JSON object.
func decodeEnvelope(resp *resty.Response) (envelope, bool) {
	var env envelope
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || body[0] != '{' {
		return env, false
	}
	if ct := resp.Header().Get("Content-Type"); ct != "" && !netx.IsJSON(ct) {
		return env, false
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, false
	}
	return env, true
}

// Submit posts a multipart form. Text fields and files travel in one request.
func (c *RESTClient) Submit(ctx context.Context, endpoint string, fields map[string]string, files []FilePart) (*SubmitResult, error) {
	req := c.rc.R().
		SetContext(ctx).
		SetMultipartFormData(fields)
	for _, f := range files {
		if f.Attachment == nil {
			continue
		}
		req.SetMultipartField(f.Field, f.Attachment.Name, f.Attachment.ContentType, bytes.NewReader(f.Attachment.Data))
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		return nil, &NetworkError{Op: "submit", Err: err}
	}

	env, ok := decodeEnvelope(resp)
	if !ok {
		return nil, &NetworkError{Op: "submit", Err: opaqueResponse(resp)}
	}

	if !resp.IsSuccess() || (env.Success != nil && !*env.Success) {
		return nil, &ServerError{StatusCode: resp.StatusCode(), Message: env.text(), Errors: env.Errors}
	}

	return &SubmitResult{Message: env.Message, Data: env.Data}, nil
}

func (c *RESTClient) ListRegistrations(ctx context.Context) (json.RawMessage, error) {
	return c.list(ctx, "list registrations", pathRegistrations)
}

func (c *RESTClient) ListPayments(ctx context.Context) (json.RawMessage, error) {
	return c.list(ctx, "list payments", pathPayments)
}

func (c *RESTClient) list(ctx context.Context, op, path string) (json.RawMessage, error) {
	resp, err := c.rc.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, c.serverError(resp)
	}

	body := bytes.TrimSpace(resp.Body())
	if !json.Valid(body) {
		return nil, &NetworkError{Op: op, Err: opaqueResponse(resp)}
	}
	return json.RawMessage(body), nil
}

func (c *RESTClient) UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(map[string]string{"status": string(status)}).
		Patch(pathStatus)
	if err != nil {
		return &NetworkError{Op: "update status", Err: err}
	}
	return c.checkMutation(resp)
}

func (c *RESTClient) DeleteRegistration(ctx context.Context, id string) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(pathRegistration)
	if err != nil {
		return &NetworkError{Op: "delete registration", Err: err}
	}
	return c.checkMutation(resp)
}

func (c *RESTClient) checkMutation(resp *resty.Response) error {
	if !resp.IsSuccess() {
		return c.serverError(resp)
	}
	if env, ok := decodeEnvelope(resp); ok && env.Success != nil && !*env.Success {
		return &ServerError{StatusCode: resp.StatusCode(), Message: env.text(), Errors: env.Errors}
	}
	return nil
}

func (c *RESTClient) serverError(resp *resty.Response) error {
	se := &ServerError{StatusCode: resp.StatusCode()}
	if env, ok := decodeEnvelope(resp); ok {
		se.Message = env.text()
		se.Errors = env.Errors
	}
	return se
}

// FetchFile downloads a registration document. A JSON error body, a non-2xx
// status or an empty body all yield a *ResourceError.
func (c *RESTClient) FetchFile(ctx context.Context, mode FileMode, id string, fileType models.FileType) (*Document, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		SetPathParams(map[string]string{"mode": string(mode), "id": id, "fileType": string(fileType)}).
		Get(pathFile)
	if err != nil {
		return nil, &NetworkError{Op: "fetch file", Err: err}
	}

	ct := resp.Header().Get("Content-Type")

	if !resp.IsSuccess() {
		msg := "Failed to fetch file: " + resp.Status()
		if env, ok := decodeEnvelope(resp); ok && env.text() != "" {
			msg = env.text()
		}
		return nil, &ResourceError{StatusCode: resp.StatusCode(), Message: msg}
	}

	if netx.IsJSON(ct) {
		if env, ok := decodeEnvelope(resp); ok && env.Success != nil && !*env.Success {
			return nil, &ResourceError{StatusCode: resp.StatusCode(), Message: firstNonEmpty(env.text(), "File not available")}
		}
	}

	if len(resp.Body()) == 0 {
		return nil, &ResourceError{StatusCode: resp.StatusCode(), Message: "File is empty"}
	}

	return &Document{
		Data:        resp.Body(),
		ContentType: ct,
		Filename:    netx.FilenameFromDisposition(resp.Header().Get("Content-Disposition")),
		URL:         c.FileURL(mode, id, fileType),
	}, nil
}

// FileURL is the absolute address of a document, for opening it elsewhere.
func (c *RESTClient) FileURL(mode FileMode, id string, fileType models.FileType) string {
	return c.baseURL + "/api/registration/" + string(mode) + "/" + url.PathEscape(id) + "/" + string(fileType)
}

type opaqueError struct {
	status int
	ct     string
}

func (e opaqueError) Error() string {
	ct := e.ct
	if ct == "" {
		ct = "no content type"
	}
	return "unexpected " + http.StatusText(e.status) + " response (" + ct + ")"
}

func opaqueResponse(resp *resty.Response) error {
	return opaqueError{status: resp.StatusCode(), ct: resp.Header().Get("Content-Type")}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
