package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
	"github.com/dmitrijs2005/tradingprofessor/internal/client/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubdDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubdDir("download")
	require.NoError(t, err)

	want := filepath.Join(tmp, "download")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureSubdDir_AbsolutePathAndIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	first, err := EnsureSubdDir(dir)
	require.NoError(t, err)
	second, err := EnsureSubdDir(dir)
	require.NoError(t, err)

	require.Equal(t, dir, first)
	require.Equal(t, first, second)
}

func TestEnsureSubdDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("download", []byte("x"), 0o660))

	_, err := EnsureSubdDir("download")
	require.Error(t, err)
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "aadhar.pdf", SafeName("aadhar.pdf"))
	assert.Equal(t, "passwd", SafeName("../../etc/passwd"))
	assert.Equal(t, "x.png", SafeName(`C:\tmp\x.png`))
	assert.Equal(t, "", SafeName(""))
	assert.Equal(t, "", SafeName(".."))
}

func TestSaveUnique_AddsSuffixOnCollision(t *testing.T) {
	dir := t.TempDir()

	p1, err := SaveUnique(dir, "signature.png", []byte("one"))
	require.NoError(t, err)
	p2, err := SaveUnique(dir, "signature.png", []byte("two"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "signature.png"), p1)
	assert.Equal(t, filepath.Join(dir, "signature (1).png"), p2)

	b, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))
}

func TestSaveUnique_RejectsEmptyName(t *testing.T) {
	_, err := SaveUnique(t.TempDir(), "  ", []byte("x"))
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestWriteTemp(t *testing.T) {
	path, err := WriteTemp(".pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	assert.Equal(t, ".pdf", filepath.Ext(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(b))
}

func TestReadDocument_SniffsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.bin")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	name, ct, data, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "scan.bin", name)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, pngHeader, data)
}

func TestDetectContentType_StripsParameters(t *testing.T) {
	assert.Equal(t, "text/plain", DetectContentType([]byte("hello world")))
	assert.Equal(t, "application/pdf", DetectContentType([]byte("%PDF-1.7\n")))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".pdf", ExtensionFor("application/pdf"))
	assert.Equal(t, ".png", ExtensionFor("image/png"))
	assert.Equal(t, "", ExtensionFor("application/x-unknown-thing"))
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, _, _, err := ReadDocument(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestReadDocument_StopsAfterLimit(t *testing.T) {
	old := MaxDocumentSize
	MaxDocumentSize = 64
	t.Cleanup(func() { MaxDocumentSize = old })

	path := filepath.Join(t.TempDir(), "huge.png")
	content := append(append([]byte{}, pngHeader...), make([]byte, 4096)...)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, ct, data, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Len(t, data, 65)
	assert.Equal(t, content[:65], data)
}

func TestReadDocument_OversizedStillFailsSizeRule(t *testing.T) {
	assert.GreaterOrEqual(t, MaxDocumentSize, validate.AadhaarFile.MaxSize)
	assert.GreaterOrEqual(t, MaxDocumentSize, validate.SignatureFile.MaxSize)

	old := MaxDocumentSize
	MaxDocumentSize = validate.SignatureFile.MaxSize
	t.Cleanup(func() { MaxDocumentSize = old })

	path := filepath.Join(t.TempDir(), "sig.png")
	content := append(append([]byte{}, pngHeader...), make([]byte, 3*validate.MiB)...)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	name, ct, data, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Len(t, data, int(MaxDocumentSize)+1)

	err = validate.SignatureFile.Check(&models.Attachment{Name: name, ContentType: ct, Data: data})
	require.Error(t, err)
	assert.Equal(t, "Signature file size cannot exceed 2MB", validate.Message(err))
}
