package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/tradingprofessor/internal/common"
)

// NetworkError means the request did not produce a usable response: the
// transport failed or the server answered with an opaque, non-JSON body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == common.ErrNetwork }

// ServerError is a completed request the backend rejected, either by status
// code or with success:false. Errors keeps the raw "errors" member.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     json.RawMessage
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *ServerError) Is(target error) bool { return target == common.ErrServer }

// ResourceError is a failed document fetch: non-2xx or an empty body.
type ResourceError struct {
	StatusCode int
	Message    string
}

func (e *ResourceError) Error() string { return e.Message }

func (e *ResourceError) Is(target error) bool { return target == common.ErrResource }
