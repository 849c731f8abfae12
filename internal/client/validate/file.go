package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
)

const MiB = 1 << 20

// FileRule constrains one uploaded document.
type FileRule struct {
	Label     string
	Types     []string
	TypesText string
	MaxSize   int64
}

var (
	AadhaarFile = FileRule{
		Label:     "Aadhaar file",
		Types:     []string{"image/jpeg", "image/jpg", "image/png", "application/pdf"},
		TypesText: "JPG, PNG, or PDF",
		MaxSize:   5 * MiB,
	}
	SignatureFile = FileRule{
		Label:     "Signature file",
		Types:     []string{"image/jpeg", "image/jpg", "image/png"},
		TypesText: "JPG or PNG",
		MaxSize:   2 * MiB,
	}
)

// Check validates presence, then MIME type, then size.
func (r FileRule) Check(a *models.Attachment) error {
	if a == nil || len(a.Data) == 0 {
		return fail(r.Label + " is required")
	}
	if !slices.Contains(r.Types, strings.ToLower(a.ContentType)) {
		return fail(r.Label + " must be " + r.TypesText)
	}
	if a.Size() > r.MaxSize {
		return fail(r.Label + " size cannot exceed " + sizeText(r.MaxSize))
	}
	return nil
}

func sizeText(n int64) string {
	if n%MiB == 0 {
		return fmt.Sprintf("%dMB", n/MiB)
	}
	return fmt.Sprintf("%.1fMB", float64(n)/MiB)
}
