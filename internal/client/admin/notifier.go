package admin

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/logging"
)

type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "success"
}

// Notification is a transient banner.
type Notification struct {
	ID      uint64
	Level   Level
	Message string
	At      time.Time
}

// Notifier keeps at most one visible notification and hides it after ttl.
// A newer notification replaces the current one and restarts the timer.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	log     logging.Logger
	seq     uint64
	current *Notification
	timer   *time.Timer
	onShow  func(Notification)
	now     func() time.Time
}

// NewNotifier builds a notifier. onShow, if set, is called synchronously
// for every new notification; it must not call back into the notifier.
func NewNotifier(ttl time.Duration, log logging.Logger, onShow func(Notification)) *Notifier {
	if log == nil {
		log = logging.Nop()
	}
	return &Notifier{ttl: ttl, log: log, onShow: onShow, now: time.Now}
}

func (n *Notifier) Success(ctx context.Context, msg string) Notification {
	n.log.Info(ctx, "notification", "level", LevelSuccess, "message", msg)
	return n.show(LevelSuccess, msg)
}

func (n *Notifier) Error(ctx context.Context, msg string) Notification {
	n.log.Warn(ctx, "notification", "level", LevelError, "message", msg)
	return n.show(LevelError, msg)
}

func (n *Notifier) show(level Level, msg string) Notification {
	n.mu.Lock()
	n.seq++
	note := Notification{ID: n.seq, Level: level, Message: msg, At: n.now()}
	n.current = &note
	if n.timer != nil {
		n.timer.Stop()
	}
	if n.ttl > 0 {
		id := note.ID
		n.timer = time.AfterFunc(n.ttl, func() { n.expire(id) })
	}
	onShow := n.onShow
	n.mu.Unlock()

	if onShow != nil {
		onShow(note)
	}
	return note
}

func (n *Notifier) expire(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
	}
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// Dismiss hides the current notification early.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
