// Package common contains shared constants and sentinel errors used across
// the trading-professor client components.
package common

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound API calls.
const RequestIDHeaderName = "X-Request-ID"

// DateLayout is the wire and input format for calendar dates (date of birth).
const DateLayout = "2006-01-02"
