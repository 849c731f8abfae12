package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
)

// FileMode selects the backend route used to fetch a registration document.
type FileMode string

const (
	FileView     FileMode = "view"
	FileDownload FileMode = "download"
)

// FilePart is one binary part of a multipart submission.
type FilePart struct {
	Field      string
	Attachment *models.Attachment
}

// SubmitResult is the acknowledgement of an accepted form.
type SubmitResult struct {
	Message string
	Data    json.RawMessage
}

// Document is a fetched registration file.
type Document struct {
	Data        []byte
	ContentType string
	// Filename comes from Content-Disposition and may be empty.
	Filename string
	URL      string
}

// Client is the contract of the trading-professor backend.
type Client interface {
	Submit(ctx context.Context, endpoint string, fields map[string]string, files []FilePart) (*SubmitResult, error)
	ListRegistrations(ctx context.Context) (json.RawMessage, error)
	ListPayments(ctx context.Context) (json.RawMessage, error)
	UpdateRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) error
	DeleteRegistration(ctx context.Context, id string) error
	FetchFile(ctx context.Context, mode FileMode, id string, fileType models.FileType) (*Document, error)
	FileURL(mode FileMode, id string, fileType models.FileType) string
}
