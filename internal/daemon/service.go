// Package daemon provides the long-running budget service: an HTTP API over one
// journaled engine session, the day reset scheduler and an SSE alert stream.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/theirongolddev/pocketguard/internal/model"
	"github.com/theirongolddev/pocketguard/internal/pipeline"
	"github.com/theirongolddev/pocketguard/internal/scheduler"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Addr             string
	EventsBuffer     int
	DayResetInterval time.Duration
	CORSAllowOrigins []string
}

// Snapshot is a compact budget state for status and event payloads.
type Snapshot struct {
	At              time.Time              `json:"at"`
	Allocation      model.BudgetAllocation `json:"allocation"`
	TodaySpending   model.Money            `json:"today_spending"`
	TotalSpending   model.Money            `json:"total_spending"`
	RemainingBudget model.Money            `json:"remaining_budget"`
	Reward          model.RewardState      `json:"reward"`
	ExpenseCount    int                    `json:"expense_count"`
	AlertCount      int                    `json:"alert_count"`
}

// Event is emitted after every change to the session.
type Event struct {
	ID        int64         `json:"id"`
	Type      string        `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	Snapshot  Snapshot      `json:"snapshot"`
	Alerts    []model.Alert `json:"alerts,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt           time.Time `json:"started_at"`
	LastResetAt         time.Time `json:"last_reset_at"`
	DayResetIntervalSec int       `json:"day_reset_interval_sec"`
	ResetCount          int64     `json:"reset_count"`
	Persistent          bool      `json:"persistent"`
	Summary             Snapshot  `json:"summary"`
	EventCount          int       `json:"event_count"`
	SubscriberCount     int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
//
// engMu serializes every session call, from handlers and the scheduler alike.
// mu guards the event ring, subscribers and reset bookkeeping. When both are held,
// engMu is taken first.
type Service struct {
	cfg     Config
	session *pipeline.Session
	metrics *metrics
	router  *gin.Engine

	engMu sync.Mutex

	mu          sync.RWMutex
	startedAt   time.Time
	lastResetAt time.Time
	resetCount  int64
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a daemon service over session.
func New(cfg Config, session *pipeline.Session) *Service {
	if cfg.DayResetInterval <= 0 {
		cfg.DayResetInterval = scheduler.DefaultInterval
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}

	s := &Service{
		cfg:       cfg,
		session:   session,
		metrics:   newMetrics(),
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
	s.metrics.spendingTotal.Set(float64(session.Ledger().TotalSpending))
	s.router = s.newRouter()
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Service) Handler() http.Handler {
	return s.router
}

// Run serves HTTP and drives the day reset scheduler until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	schedCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	go scheduler.DayReset{Interval: s.cfg.DayResetInterval, Reset: s.dayBoundary}.Run(schedCtx)

	log.Info().Str("addr", s.cfg.Addr).Dur("day_reset_interval", s.cfg.DayResetInterval).Msg("daemon listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("daemon http server: %w", err)
	}
}

// dayBoundary is the scheduler callback.
func (s *Service) dayBoundary() {
	if _, err := s.mutate("day_boundary", func() ([]model.Alert, error) {
		return nil, s.session.OnDayBoundary()
	}); err != nil {
		log.Error().Err(err).Msg("day boundary")
	}
}

// mutate runs fn under the engine lock, updates metrics and publishes an event.
// A journal failure is logged and the event still published: the change is
// already applied in memory.
func (s *Service) mutate(typ string, fn func() ([]model.Alert, error)) (Event, error) {
	s.engMu.Lock()
	defer s.engMu.Unlock()

	alerts, err := fn()
	if err != nil && !errors.Is(err, pipeline.ErrJournal) {
		return Event{}, err
	}
	if err != nil {
		log.Warn().Err(err).Str("type", typ).Msg("change applied but not journaled")
	}

	switch typ {
	case "expense":
		s.metrics.expensesRecorded.WithLabelValues("regular").Inc()
	case "emergency":
		s.metrics.expensesRecorded.WithLabelValues("emergency").Inc()
	}

	s.metrics.observeAlerts(alerts)
	snap := s.snapshotLocked()
	s.metrics.spendingTotal.Set(float64(snap.TotalSpending))

	s.mu.Lock()
	if typ == "day_boundary" {
		s.lastResetAt = snap.At
		s.resetCount++
		s.metrics.dayResets.Inc()
	}
	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      typ,
		Timestamp: snap.At,
		Snapshot:  snap,
		Alerts:    alerts,
	}
	s.mu.Unlock()

	s.publishEvent(ev)
	return ev, nil
}

// snapshotLocked reads the session. The caller holds engMu.
func (s *Service) snapshotLocked() Snapshot {
	ledger := s.session.Ledger()
	return Snapshot{
		At:              time.Now(),
		Allocation:      s.session.Allocation(),
		TodaySpending:   ledger.TodaySpending,
		TotalSpending:   ledger.TotalSpending,
		RemainingBudget: s.session.RemainingBudget(),
		Reward:          s.session.Reward(),
		ExpenseCount:    len(ledger.Expenses),
		AlertCount:      len(s.session.Alerts()),
	}
}

func (s *Service) snapshot() Snapshot {
	s.engMu.Lock()
	defer s.engMu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	summary := s.snapshot()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:           s.startedAt,
		LastResetAt:         s.lastResetAt,
		DayResetIntervalSec: int(s.cfg.DayResetInterval.Seconds()),
		ResetCount:          s.resetCount,
		Persistent:          s.session.Persistent(),
		Summary:             summary,
		EventCount:          len(s.events),
		SubscriberCount:     len(s.subs),
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
