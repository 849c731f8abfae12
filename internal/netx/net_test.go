package netx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"quoted", `attachment; filename="aadhar_42.pdf"`, "aadhar_42.pdf"},
		{"unquoted", `attachment; filename=sig.png`, "sig.png"},
		{"rfc5987", `attachment; filename*=UTF-8''my%20scan.pdf`, "my scan.pdf"},
		{"unquoted with spaces", `attachment; filename=my scan.pdf`, "my scan.pdf"},
		{"inline without name", `inline`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilenameFromDisposition(tt.header))
		})
	}
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, "application/json", MediaType("application/json; charset=utf-8"))
	assert.Equal(t, "text/html", MediaType("Text/HTML"))
	assert.Equal(t, "", MediaType(""))
}

func TestIsJSON(t *testing.T) {
	assert.True(t, IsJSON("application/json"))
	assert.True(t, IsJSON("application/problem+json; charset=utf-8"))
	assert.False(t, IsJSON("text/html"))
	assert.False(t, IsJSON(""))
}

func TestIsImageAndPDF(t *testing.T) {
	assert.True(t, IsImage("image/jpeg"))
	assert.False(t, IsImage("application/pdf"))
	assert.True(t, IsPDF("application/pdf"))
	assert.False(t, IsPDF("image/png"))
}
