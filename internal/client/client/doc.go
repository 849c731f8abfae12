// Package client talks to the trading-professor REST backend.
//
// # Overview
//
// Client is the transport-agnostic contract used by the submission service
// and the admin table. RESTClient implements it over resty: it stamps every
// request with an X-Request-ID, attaches the admin bearer token when one is
// configured, logs each exchange and maps failures onto three error types.
//
// # Error Handling
//
//   - *NetworkError  (errors.Is common.ErrNetwork): transport failure or an
//     opaque non-JSON error body.
//   - *ServerError   (errors.Is common.ErrServer): non-2xx or success:false,
//     with the raw "errors" member for field reconciliation.
//   - *ResourceError (errors.Is common.ErrResource): document fetch returned
//     non-2xx or zero bytes.
//
// File endpoints may answer with either the binary or a JSON error body, so
// the content type is checked before any attempt to decode JSON.
package client
