package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/repository"
	"github.com/jmoren/wellspring/internal/sensor"
	"github.com/jmoren/wellspring/internal/service"
)

type handlers struct {
	svc *service.WellnessService
	sim *sensor.Simulator
}

func (h *handlers) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyz reports degraded (not failed) readiness when the model endpoint
// is down: the service still answers every request with fallbacks.
func (h *handlers) readyz(c *gin.Context) {
	if h.svc.Ready(c.Request.Context()) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "llm": "available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "degraded", "llm": "unavailable"})
}

func (h *handlers) upsertProfile(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}
	if err := h.svc.UpsertProfile(c.Request.Context(), c.Param("id"), profile); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *handlers) getProfile(c *gin.Context) {
	profile, err := h.svc.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *handlers) assess(c *gin.Context) {
	result, err := h.svc.Assess(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) listTasks(c *gin.Context) {
	status := domain.TaskStatus(c.Query("status"))
	if status != "" && status != domain.TaskStatusPending && status != domain.TaskStatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}
	tasks, err := h.svc.Tasks(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.fail(c, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *handlers) completeTask(c *gin.Context) {
	var report domain.CompletionReport
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&report); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid completion payload"})
			return
		}
	}
	coins, err := h.svc.CompleteTask(c.Request.Context(), c.Param("id"), c.Param("taskID"), &report)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coins": coins})
}

func (h *handlers) chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	result, err := h.svc.Chat(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) resetChat(c *gin.Context) {
	h.svc.ResetChat(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *handlers) advice(c *gin.Context) {
	var req struct {
		Topic string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}
	result, err := h.svc.Advice(c.Request.Context(), c.Param("id"), req.Topic)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) support(c *gin.Context) {
	var req struct {
		Concern string `json:"concern" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "concern is required"})
		return
	}
	result, err := h.svc.Support(c.Request.Context(), c.Param("id"), req.Concern)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handlers) tips(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tips payload"})
			return
		}
	}
	tips, err := h.svc.Tips(c.Request.Context(), c.Param("id"), req.Question)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

func (h *handlers) rewardSummary(c *gin.Context) {
	summary, err := h.svc.RewardSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	events, err := h.svc.Rewards(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "events": events})
}

func (h *handlers) progress(c *gin.Context) {
	progress, err := h.svc.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func (h *handlers) history(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.svc.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	if records == nil {
		records = []domain.ConversationRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"history": records})
}

func (h *handlers) sensorLatest(c *gin.Context) {
	if h.sim == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sensor feed disabled"})
		return
	}
	sample, ok := h.sim.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no sample available yet"})
		return
	}
	c.JSON(http.StatusOK, sample)
}

func (h *handlers) fail(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
