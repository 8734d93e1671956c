package daemon

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theirongolddev/pocketguard/internal/engine"
	"github.com/theirongolddev/pocketguard/internal/model"
)

// BudgetRequest is the body of PUT /v1/budget.
type BudgetRequest struct {
	Amount int64 `json:"amount"`
}

// ExpenseRequest is the body of POST /v1/expenses.
type ExpenseRequest struct {
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
	Mood     string `json:"mood"`
}

// EmergencyRequest is the body of POST /v1/expenses/emergency.
type EmergencyRequest struct {
	Amount int64 `json:"amount"`
}

// ReportResponse is the body of GET /v1/report.
type ReportResponse struct {
	model.ReportSnapshot
	OnTrack bool `json:"on_track"`
}

const defaultExpenseLimit = 20

func (s *Service) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok\n")
}

func (s *Service) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleSetBudget(c *gin.Context) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	var alloc model.BudgetAllocation
	_, err := s.mutate("budget", func() ([]model.Alert, error) {
		var err error
		alloc, err = s.session.SetMonthlyBudget(model.Money(req.Amount))
		return nil, err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alloc)
}

func (s *Service) handleRecordExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		writeError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	mood, err := model.ParseMood(req.Mood)
	if err != nil {
		writeError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	var res engine.ExpenseResult
	_, err = s.mutate("expense", func() ([]model.Alert, error) {
		var err error
		res, err = s.session.RecordExpense(engine.ExpenseInput{
			Amount:   model.Money(req.Amount),
			Category: category,
			Mood:     mood,
		})
		return res.Alerts, err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Service) handleRecordEmergency(c *gin.Context) {
	var req EmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	var res engine.EmergencyResult
	_, err := s.mutate("emergency", func() ([]model.Alert, error) {
		var err error
		res, err = s.session.RecordEmergencyExpense(engine.EmergencyInput{Amount: model.Money(req.Amount)})
		return res.Alerts, err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// handleListExpenses returns the most recent expenses, newest first.
func (s *Service) handleListExpenses(c *gin.Context) {
	limit := defaultExpenseLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, fmt.Errorf("%w: limit must be a positive integer", errBadRequest))
			return
		}
		limit = n
	}

	s.engMu.Lock()
	expenses := s.session.Recent(limit)
	s.engMu.Unlock()

	slices.Reverse(expenses)
	if expenses == nil {
		expenses = []model.ExpenseRecord{}
	}
	c.JSON(http.StatusOK, expenses)
}

func (s *Service) handleListAlerts(c *gin.Context) {
	s.engMu.Lock()
	alerts := s.session.Alerts()
	s.engMu.Unlock()

	c.JSON(http.StatusOK, alerts)
}

func (s *Service) handleClearAlerts(c *gin.Context) {
	if _, err := s.mutate("alerts_cleared", func() ([]model.Alert, error) {
		return nil, s.session.ClearAlerts()
	}); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) handleTip(c *gin.Context) {
	var alert model.Alert
	if _, err := s.mutate("tip", func() ([]model.Alert, error) {
		var err error
		alert, err = s.session.RequestMicroSavingTip()
		return []model.Alert{alert}, err
	}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

func (s *Service) handleDayBoundary(c *gin.Context) {
	if _, err := s.mutate("day_boundary", func() ([]model.Alert, error) {
		return nil, s.session.OnDayBoundary()
	}); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) handleReport(c *gin.Context) {
	s.engMu.Lock()
	report := s.session.Report()
	s.engMu.Unlock()

	c.JSON(http.StatusOK, ReportResponse{ReportSnapshot: report, OnTrack: report.OnTrack()})
}

func (s *Service) handleEvents(c *gin.Context) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	c.JSON(http.StatusOK, events)
}

// handleStream sends the current snapshot, then every new event, as server-sent events.
func (s *Service) handleStream(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshot(),
	}
	c.SSEvent(current.Type, current)
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case ev := <-ch:
			c.SSEvent(ev.Type, ev)
			c.Writer.Flush()
		}
	}
}
