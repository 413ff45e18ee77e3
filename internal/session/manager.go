// Package session keeps a registry of independent calculator sessions.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/averycrespi/calculator-mcp/internal/calculator"
)

// DefaultSessionID names the session used when a caller does not pick one.
// It always exists and is never evicted.
const DefaultSessionID = "default"

// ErrSessionNotFound indicates an unknown or closed session id
var ErrSessionNotFound = errors.New("session not found")

// Info describes a session
type Info struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

type record struct {
	mu   sync.Mutex
	info Info
	calc *calculator.Calculator
}

// Options configures a Manager
type Options struct {
	Calculator  calculator.Config
	// MaxSessions bounds the number of sessions including the default one.
	// Zero means unlimited. The default session is never evicted, so a value
	// of 1 cannot be honored once another session is created.
	MaxSessions int
	IdleTimeout time.Duration
	Logger      *zap.Logger
	// Now is used for timestamps; defaults to time.Now
	Now func() time.Time
}

// Manager owns every calculator session
type Manager struct {
	opts     Options
	logger   *zap.Logger
	mu       sync.RWMutex
	sessions map[string]*record
}

// NewManager creates a manager holding only the default session
func NewManager(opts Options) *Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		opts:     opts,
		logger:   logger,
		sessions: make(map[string]*record),
	}
	m.sessions[DefaultSessionID] = m.newRecord(DefaultSessionID)
	return m
}

func (m *Manager) newRecord(id string) *record {
	now := m.opts.Now()
	return &record{
		info: Info{ID: id, CreatedAt: now, LastActive: now},
		calc: calculator.New(m.opts.Calculator),
	}
}

// Create starts a new session, evicting the least recently active session if
// the manager is full.
func (m *Manager) Create() Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opts.MaxSessions > 0 {
		for len(m.sessions) >= m.opts.MaxSessions {
			if !m.evictOldestLocked() {
				break
			}
		}
	}

	rec := m.newRecord(uuid.NewString())
	m.sessions[rec.info.ID] = rec
	m.logger.Debug("Created session", zap.String("session_id", rec.info.ID))
	return rec.info
}

// evictOldestLocked removes the least recently active session other than the
// default one. The caller must hold m.mu.
func (m *Manager) evictOldestLocked() bool {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, rec := range m.sessions {
		if id == DefaultSessionID {
			continue
		}
		rec.mu.Lock()
		last := rec.info.LastActive
		rec.mu.Unlock()
		if oldestID == "" || last.Before(oldest) {
			oldestID, oldest = id, last
		}
	}
	if oldestID == "" {
		return false
	}

	delete(m.sessions, oldestID)
	m.logger.Info("Evicted session", zap.String("session_id", oldestID), zap.String("reason", "capacity"))
	return true
}

func (m *Manager) lookup(id string) (*record, error) {
	if id == "" {
		id = DefaultSessionID
	}

	m.mu.RLock()
	rec, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return rec, nil
}

// Get returns the current state of a session. An empty id selects the
// default session.
func (m *Manager) Get(id string) (calculator.State, error) {
	rec, err := m.lookup(id)
	if err != nil {
		return calculator.State{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.calc.State(), nil
}

// Apply runs fn against a session's calculator and returns the resulting
// state. Calls on the same session are serialized.
func (m *Manager) Apply(id string, fn func(c *calculator.Calculator) error) (calculator.State, error) {
	rec, err := m.lookup(id)
	if err != nil {
		return calculator.State{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.info.LastActive = m.opts.Now()
	if err := fn(rec.calc); err != nil {
		return rec.calc.State(), err
	}
	return rec.calc.State(), nil
}

// Close removes a session. Closing the default session clears it instead.
func (m *Manager) Close(id string) error {
	if id == "" || id == DefaultSessionID {
		_, err := m.Apply(DefaultSessionID, func(c *calculator.Calculator) error {
			c.Clear()
			return nil
		})
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.logger.Debug("Closed session", zap.String("session_id", id))
	return nil
}

// List returns every session ordered by creation time
func (m *Manager) List() []Info {
	m.mu.RLock()
	infos := make([]Info, 0, len(m.sessions))
	for _, rec := range m.sessions {
		rec.mu.Lock()
		infos = append(infos, rec.info)
		rec.mu.Unlock()
	}
	m.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

// Len returns the number of sessions, including the default one
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep closes sessions idle for longer than the idle timeout and returns how
// many were closed.
func (m *Manager) Sweep(now time.Time) int {
	if m.opts.IdleTimeout <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	closed := 0
	for id, rec := range m.sessions {
		if id == DefaultSessionID {
			continue
		}
		rec.mu.Lock()
		idle := now.Sub(rec.info.LastActive)
		rec.mu.Unlock()
		if idle > m.opts.IdleTimeout {
			delete(m.sessions, id)
			closed++
			m.logger.Info("Evicted session", zap.String("session_id", id), zap.String("reason", "idle"), zap.Duration("idle", idle))
		}
	}
	return closed
}

// Run sweeps idle sessions every interval until ctx is cancelled
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || m.opts.IdleTimeout <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(m.opts.Now())
		}
	}
}
