package admin

import (
	"os"
	"sync"

	"github.com/dmitrijs2005/tradingprofessor/internal/client/models"
)

// ModalPhase is the state of the document viewer.
type ModalPhase int

const (
	ModalClosed ModalPhase = iota
	ModalLoading
	ModalDisplaying
	ModalFailed
)

func (p ModalPhase) String() string {
	switch p {
	case ModalLoading:
		return "loading"
	case ModalDisplaying:
		return "displaying"
	case ModalFailed:
		return "failed"
	default:
		return "closed"
	}
}

// Display is how a resolved document is rendered.
type Display int

const (
	DisplayImage Display = iota
	DisplayPDF
	DisplayExternal
)

func (d Display) String() string {
	switch d {
	case DisplayImage:
		return "image"
	case DisplayPDF:
		return "pdf"
	default:
		return "external"
	}
}

// ModalState is a snapshot of the viewer. Path is a local copy of the
// document owned by the modal; URL is the backend address for opening it
// externally.
type ModalState struct {
	Phase       ModalPhase
	Title       string
	RecordID    string
	FileType    models.FileType
	Display     Display
	ContentType string
	Path        string
	URL         string
	Message     string
}

var removeFile = os.Remove

// FileModal is the Closed -> Loading -> Displaying|Failed state machine.
// Each Open returns a token; results carrying an older token are dropped,
// and any local copy they hold is deleted.
type FileModal struct {
	mu    sync.Mutex
	state ModalState
	token uint64
}

// Open releases the current document and enters Loading.
func (m *FileModal) Open(title, id string, ft models.FileType) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release()
	m.token++
	m.state = ModalState{Phase: ModalLoading, Title: title, RecordID: id, FileType: ft}
	return m.token
}

// Resolve shows a loaded document. It reports false and deletes path if
// the modal was closed or reopened meanwhile.
func (m *FileModal) Resolve(token uint64, display Display, contentType, path, url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token != m.token || m.state.Phase != ModalLoading {
		if path != "" {
			_ = removeFile(path)
		}
		return false
	}
	m.state.Phase = ModalDisplaying
	m.state.Display = display
	m.state.ContentType = contentType
	m.state.Path = path
	m.state.URL = url
	return true
}

// Fail records an error; url stays available for opening externally.
func (m *FileModal) Fail(token uint64, msg, url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if token != m.token || m.state.Phase != ModalLoading {
		return false
	}
	m.state.Phase = ModalFailed
	m.state.Message = msg
	m.state.URL = url
	return true
}

// Close returns to Closed and deletes the local copy.
func (m *FileModal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release()
	m.token++
	m.state = ModalState{}
}

func (m *FileModal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *FileModal) release() {
	if m.state.Path != "" {
		_ = removeFile(m.state.Path)
		m.state.Path = ""
	}
}
