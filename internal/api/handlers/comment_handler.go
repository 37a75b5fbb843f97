package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intervueapp/intervue/internal/services"
	"github.com/intervueapp/intervue/internal/utils"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) ListByInterview(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	interviewID := c.Query("interviewId")
	if interviewID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CommentHandler.ListByInterview", "interviewId is required", nil))
		return
	}

	comments, err := h.svc.ListByInterview(c.Request.Context(), interviewID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

type CreateCommentRequest struct {
	InterviewID string `json:"interviewId" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CommentHandler.Create", "invalid request body", err))
		return
	}

	comment, err := h.svc.Create(c.Request.Context(), sessionRole(c), userID, req.InterviewID, req.Content, req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
