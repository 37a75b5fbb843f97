package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/intervueapp/intervue/internal/models"
	"github.com/intervueapp/intervue/internal/services"
	"github.com/intervueapp/intervue/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type CreateInterviewRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	StartTime      int64    `json:"startTime" binding:"required"`
	CandidateID    string   `json:"candidateId" binding:"required"`
	InterviewerIDs []string `json:"interviewerIds"`
	StreamCallID   string   `json:"streamCallId"`
}

func (h *InterviewHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Create", "invalid request body", err))
		return
	}

	iv, err := h.svc.Schedule(c.Request.Context(), userID, sessionRole(c), services.ScheduleInterviewInput{
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      req.StartTime,
		CandidateID:    req.CandidateID,
		InterviewerIDs: req.InterviewerIDs,
		StreamCallID:   req.StreamCallID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, iv)
}

func (h *InterviewHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.svc.ListFor(c.Request.Context(), userID, sessionRole(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *InterviewHandler) Mine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.svc.Mine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Grouped returns the dashboard buckets for the caller's visible
// interviews, evaluated against the server clock.
func (h *InterviewHandler) Grouped(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	grouped, err := h.svc.GroupedFor(c.Request.Context(), userID, sessionRole(c), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *InterviewHandler) ByStreamCall(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	iv, err := h.svc.GetByStreamCallID(c.Request.Context(), c.Query("streamCallId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

type UpdateStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.UpdateStatus", "invalid request body", err))
		return
	}

	iv, err := h.svc.UpdateStatus(c.Request.Context(), sessionRole(c), req.ID, models.InterviewStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}
