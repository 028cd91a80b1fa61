package live

import (
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/keyvan-m/nftlens/internal/analysis"
)

// LiveUpdate is the payload pushed to a subscribed client on every tick.
// Price and volume jitter are seeded from the contract's seedHash and the
// tick counter, so a session replays identically for the same address.
type LiveUpdate struct {
	ContractAddress string    `json:"contractAddress"`
	Price           float64   `json:"price"`
	Volume24h       int       `json:"volume24h"`
	TrustScore      int       `json:"trustScore"`
	Tick            int       `json:"tick"`
	Timestamp       time.Time `json:"timestamp"`
}

// Session is one client subscription: a websocket connection plus its own
// scheduled update loop. Sessions are owned by the Manager; ad hoc timer
// handles attached to sockets are exactly what this replaces.
type Session struct {
	ID      string
	Address string

	conn         *websocket.Conn
	interval     time.Duration
	pingInterval time.Duration
	generator    *analysis.Generator
	logger       *logrus.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// run pushes updates until the client disconnects, stops answering pings,
// a write fails, or the session is closed. onExit runs exactly once on the
// way out.
func (s *Session) run(onExit func()) {
	defer onExit()
	defer s.conn.Close()

	record := s.generator.Generate(s.Address)
	hash := record.SeedHash

	// Pongs extend the read deadline; a peer that stops answering makes
	// the reader goroutine fail within PongWait.
	if err := s.conn.SetReadDeadline(time.Now().Add(PongWait)); err != nil {
		return
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	// Reader goroutine: we never expect client payloads, but reading is
	// required to notice the close frame and to service pong frames.
	go func() {
		for {
			if _, _, err := s.conn.ReadMessage(); err != nil {
				s.Close()
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	pingTicker := time.NewTicker(s.pingInterval)
	defer pingTicker.Stop()

	tick := 0
	for {
		select {
		case <-s.done:
			return
		case <-pingTicker.C:
			deadline := time.Now().Add(WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.logger.WithFields(logrus.Fields{
					"session": s.ID,
					"error":   err,
				}).Warn("ping write failed, dropping session")
				return
			}
		case <-ticker.C:
			tick++
			update := buildUpdate(record, hash, tick)

			if err := s.conn.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil {
				s.logger.WithFields(logrus.Fields{
					"session": s.ID,
					"error":   err,
				}).Warn("setting write deadline failed, dropping session")
				return
			}
			if err := s.conn.WriteJSON(update); err != nil {
				s.logger.WithFields(logrus.Fields{
					"session": s.ID,
					"error":   err,
				}).Warn("live update write failed, dropping session")
				return
			}
		}
	}
}

// Close stops the session's update loop. Safe to call multiple times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// buildUpdate derives the tick payload from the base record. The jitter
// envelope is +/-2% on price and +/-5% on volume.
func buildUpdate(record *analysis.AnalysisRecord, hash, tick int) LiveUpdate {
	priceJitter := math.Sin(float64(hash+tick)) * 0.02
	volumeJitter := math.Cos(float64(hash+tick)) * 0.05

	return LiveUpdate{
		ContractAddress: record.ContractAddress,
		Price:           math.Round(record.CurrentPrice*(1+priceJitter)*10000) / 10000,
		Volume24h:       int(float64(record.Volume24h) * (1 + volumeJitter)),
		TrustScore:      record.TrustScore,
		Tick:            tick,
		Timestamp:       time.Now().UTC(),
	}
}
