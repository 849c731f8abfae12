// Package filex holds the small filesystem helpers the client needs:
// a download directory, collision-free saving, temporary previews and
// reading local documents with their sniffed MIME type.
package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrEmptyName = errors.New("empty file name")

// EnsureSubdDir creates dirName (relative to the working directory unless
// absolute) and returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// SafeName strips any directory component a server-provided file name may carry.
func SafeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}

// SaveUnique writes data into dir under name. If the name is taken, a
// " (n)" suffix is inserted before the extension. It returns the final path.
func SaveUnique(dir, name string, data []byte) (string, error) {
	name = SafeName(name)
	if name == "" {
		return "", ErrEmptyName
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 0; ; n++ {
		candidate := name
		if n > 0 {
			candidate = stem + " (" + strconv.Itoa(n) + ")" + ext
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return path, f.Close()
	}
}

// WriteTemp stores data in a new temporary file whose name ends with ext
// and returns its path. The caller owns the file and must remove it.
func WriteTemp(ext string, data []byte) (string, error) {
	f, err := os.CreateTemp("", "tp-preview-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), f.Close()
}

// MaxDocumentSize bounds how much of a local document ReadDocument loads.
// It matches the largest upload size rule.
var MaxDocumentSize int64 = 5 << 20

// ReadDocument loads a local file and detects its MIME type from content,
// not from the extension. Parameters such as charset are dropped.
//
// At most MaxDocumentSize+1 bytes are read, so an oversized file comes back
// just large enough to fail the size rule.
func ReadDocument(path string) (name, contentType string, data []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", nil, err
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, MaxDocumentSize+1))
	if err != nil {
		return "", "", nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return filepath.Base(path), DetectContentType(data), data, nil
}

// DetectContentType sniffs data and returns a bare media type such as
// "image/png" or "application/pdf".
func DetectContentType(data []byte) string {
	mt := mimetype.Detect(data).String()
	if base, _, ok := strings.Cut(mt, ";"); ok {
		return strings.TrimSpace(base)
	}
	return mt
}

// ExtensionFor returns the canonical extension (with dot) for a media type
// or "" if unknown.
func ExtensionFor(contentType string) string {
	if mt := mimetype.Lookup(contentType); mt != nil {
		return mt.Extension()
	}
	return ""
}
