// Package netx contains HTTP header helpers shared by the API client and
// the admin file actions.
package netx

import (
	"mime"
	"net/url"
	"regexp"
	"strings"
)

var filenameRe = regexp.MustCompile(`(?i)filename\*?=(?:UTF-8'')?"?([^";]+)"?`)

// FilenameFromDisposition extracts the file name carried by a
// Content-Disposition header. It returns "" when none can be found.
func FilenameFromDisposition(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := strings.TrimSpace(params["filename"]); name != "" {
			return name
		}
	}

	// Servers regularly send unquoted names with spaces, which the strict
	// parser rejects.
	m := filenameRe.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	name := strings.TrimSpace(m[1])
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}

// MediaType returns the lower-cased media type of a Content-Type header
// without parameters.
func MediaType(contentType string) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}
	base, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}

// IsJSON reports whether a Content-Type header denotes a JSON body.
func IsJSON(contentType string) bool {
	mt := MediaType(contentType)
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// IsImage reports whether a media type is an image.
func IsImage(contentType string) bool {
	return strings.HasPrefix(MediaType(contentType), "image/")
}

// IsPDF reports whether a media type is a PDF document.
func IsPDF(contentType string) bool {
	return MediaType(contentType) == "application/pdf"
}
