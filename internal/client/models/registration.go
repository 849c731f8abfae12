package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Registration is an enrollment application as returned by the admin API.
//
// The backend has shipped several shapes over time, so decoding accepts
// id or _id, name or firstName/lastName, courseName or course and
// createdAt or joinDate.
type Registration struct {
	ID                string             `json:"id"`
	FirstName         string             `json:"firstName,omitempty"`
	LastName          string             `json:"lastName,omitempty"`
	Name              string             `json:"name,omitempty"`
	Email             string             `json:"email,omitempty"`
	Phone             string             `json:"phone,omitempty"`
	DateOfBirth       string             `json:"dateOfBirth,omitempty"`
	Address           string             `json:"address,omitempty"`
	City              string             `json:"city,omitempty"`
	State             string             `json:"state,omitempty"`
	Pincode           string             `json:"pincode,omitempty"`
	AadharNumber      string             `json:"aadharNumber,omitempty"`
	CourseName        string             `json:"courseName,omitempty"`
	TradingExperience string             `json:"tradingExperience,omitempty"`
	Status            RegistrationStatus `json:"status"`
	CreatedAt         time.Time          `json:"createdAt,omitzero"`
	HasAadharFile     bool               `json:"-"`
	HasSignatureFile  bool               `json:"-"`
}

type registrationWire struct {
	ID                json.RawMessage `json:"id"`
	MongoID           json.RawMessage `json:"_id"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             json.RawMessage `json:"phone"`
	DateOfBirth       string          `json:"dateOfBirth"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	State             string          `json:"state"`
	Pincode           json.RawMessage `json:"pincode"`
	AadharNumber      json.RawMessage `json:"aadharNumber"`
	CourseName        string          `json:"courseName"`
	Course            string          `json:"course"`
	TradingExperience string          `json:"tradingExperience"`
	Status            string          `json:"status"`
	CreatedAt         string          `json:"createdAt"`
	JoinDate          string          `json:"joinDate"`
	AadharFile        json.RawMessage `json:"aadharFile"`
	AadharCard        json.RawMessage `json:"aadharCard"`
	SignatureFile     json.RawMessage `json:"signatureFile"`
	Signature         json.RawMessage `json:"signature"`
}

func (r *Registration) UnmarshalJSON(b []byte) error {
	var w registrationWire
	if err := decodeWire(b, &w); err != nil {
		return err
	}

	*r = Registration{
		ID:                firstNonEmpty(looseString(w.ID), looseString(w.MongoID)),
		FirstName:         w.FirstName,
		LastName:          w.LastName,
		Name:              w.Name,
		Email:             w.Email,
		Phone:             looseString(w.Phone),
		DateOfBirth:       w.DateOfBirth,
		Address:           w.Address,
		City:              w.City,
		State:             w.State,
		Pincode:           looseString(w.Pincode),
		AadharNumber:      looseString(w.AadharNumber),
		CourseName:        firstNonEmpty(w.CourseName, w.Course),
		TradingExperience: w.TradingExperience,
		Status:            RegistrationStatus(strings.ToLower(w.Status)),
		CreatedAt:         parseTimestamp(firstNonEmpty(w.CreatedAt, w.JoinDate)),
		HasAadharFile:     present(w.AadharFile) || present(w.AadharCard),
		HasSignatureFile:  present(w.SignatureFile) || present(w.Signature),
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// DisplayName prefers "First Last", then the single name field.
func (r Registration) DisplayName() string {
	if r.FirstName != "" && r.LastName != "" {
		return r.FirstName + " " + r.LastName
	}
	if name := firstNonEmpty(r.Name, r.FirstName, r.LastName); name != "" {
		return name
	}
	return "Unknown"
}

// Initials returns up to two upper-case letters for avatars and lists.
func (r Registration) Initials() string {
	var out []rune
	for _, part := range strings.Fields(r.DisplayName()) {
		c, _ := utf8.DecodeRuneInString(part)
		out = append(out, unicode.ToUpper(c))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// HasDocuments reports whether any KYC document is stored for the record.
func (r Registration) HasDocuments() bool {
	return r.HasAadharFile || r.HasSignatureFile
}

// decodeWire fills v from b. A field of the wrong JSON type is left at its
// zero value instead of failing the whole record.
func decodeWire(b []byte, v any) error {
	err := json.Unmarshal(b, v)
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return nil
	}
	return err
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// looseString decodes a JSON string or number into its text.
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func present(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", `""`, "{}", "[]":
		return false
	}
	return true
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
