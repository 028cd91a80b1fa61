// Package live streams periodic synthetic metric updates to dashboard
// clients over WebSocket. A Manager owns every open Session; each session
// runs its own scheduled update loop instead of sharing global timers.
package live

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/keyvan-m/nftlens/internal/analysis"
)

const (
	// HandshakeTimeout bounds the websocket upgrade.
	HandshakeTimeout = 5 * time.Second

	// WriteTimeout bounds every outbound frame.
	WriteTimeout = 10 * time.Second

	// PingInterval is how often a session pings its client.
	PingInterval = 30 * time.Second

	// PongWait is how long a session tolerates silence before the reader
	// gives up on the peer. Must exceed PingInterval.
	PongWait = 60 * time.Second
)

// Manager tracks all live sessions and hands out the upgrade handler.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	upgrader     websocket.Upgrader
	interval     time.Duration
	pingInterval time.Duration
	generator    *analysis.Generator
	logger       *logrus.Logger
}

func NewManager(interval time.Duration, generator *analysis.Generator, logger *logrus.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		upgrader: websocket.Upgrader{
			HandshakeTimeout: HandshakeTimeout,
			CheckOrigin:      func(r *http.Request) bool { return true },
		},
		interval:     interval,
		pingInterval: PingInterval,
		generator:    generator,
		logger:       logger,
	}
}

// Handler returns the gin handler for GET /ws?address=0x...
// The address is validated before the connection is upgraded.
func (m *Manager) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Query("address")
		if !analysis.IsValidAddress(address) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid contract address",
			})
			return
		}

		conn, err := m.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			m.logger.WithError(err).Error("websocket upgrade failed")
			return
		}

		session := &Session{
			ID:           uuid.New().String(),
			Address:      address,
			conn:         conn,
			interval:     m.interval,
			pingInterval: m.pingInterval,
			generator:    m.generator,
			logger:       m.logger,
			done:         make(chan struct{}),
		}

		m.register(session)
		m.logger.WithFields(logrus.Fields{
			"session": session.ID,
			"address": address,
		}).Info("live session opened")

		go session.run(func() {
			m.unregister(session.ID)
			m.logger.WithField("session", session.ID).Info("live session closed")
		})
	}
}

func (m *Manager) register(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

func (m *Manager) unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of open sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown closes every open session. Loops observe the close and
// unregister themselves.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	open := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		open = append(open, s)
	}
	m.mu.Unlock()

	for _, s := range open {
		s.Close()
	}
}
