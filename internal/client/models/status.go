// Package models defines the records exchanged with the trading-professor
// backend and the small value types shared by the client layers.
package models

import (
	"fmt"
	"strings"
)

// RegistrationStatus is the admin-managed lifecycle state of a registration.
// New registrations are pending; only an explicit admin action changes it.
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "pending"
	StatusActive    RegistrationStatus = "active"
	StatusCompleted RegistrationStatus = "completed"
	StatusCancelled RegistrationStatus = "cancelled"
)

// RegistrationStatuses lists every status in display order.
var RegistrationStatuses = []RegistrationStatus{StatusPending, StatusActive, StatusCompleted, StatusCancelled}

// ParseRegistrationStatus accepts a status name in any case.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	st := RegistrationStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RegistrationStatuses {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown registration status %q", s)
}

// PaymentClass groups the many status strings the payment gateway reports.
type PaymentClass int

const (
	PaymentUnknown PaymentClass = iota
	PaymentSucceeded
	PaymentPending
	PaymentFailed
)

func (c PaymentClass) String() string {
	switch c {
	case PaymentSucceeded:
		return "success"
	case PaymentPending:
		return "pending"
	case PaymentFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ClassifyPaymentStatus maps a raw gateway status to its class.
func ClassifyPaymentStatus(status string) PaymentClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success", "completed", "paid":
		return PaymentSucceeded
	case "pending":
		return PaymentPending
	case "failed", "rejected":
		return PaymentFailed
	default:
		return PaymentUnknown
	}
}

// FileType tags which registration document a file endpoint serves.
type FileType string

const (
	FileAadhar    FileType = "aadhar"
	FileSignature FileType = "signature"
)

func ParseFileType(s string) (FileType, error) {
	switch FileType(strings.ToLower(strings.TrimSpace(s))) {
	case FileAadhar:
		return FileAadhar, nil
	case FileSignature:
		return FileSignature, nil
	}
	return "", fmt.Errorf("unknown file type %q (want aadhar or signature)", s)
}

// Label is the human title of the document.
func (f FileType) Label() string {
	if f == FileAadhar {
		return "Aadhar Card"
	}
	return "Signature"
}
