package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intervueapp/intervue/internal/authz"
	"github.com/intervueapp/intervue/internal/services"
	"github.com/intervueapp/intervue/internal/utils"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List returns every user. Any authenticated role may call it; the
// participant lookup on meeting cards needs the full collection.
func (h *UserHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ByID(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.ByID", "id is required", nil))
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type SyncUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Image string `json:"image"`
}

// Sync idempotently creates the caller's user record after an OAuth
// sign-in.
func (h *UserHandler) Sync(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UserHandler.Sync", "invalid request body", err))
		return
	}

	user, created, err := h.svc.Sync(c.Request.Context(), req.Name, req.Email, req.Image)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

type RoleResponse struct {
	Role string `json:"role"`
	authz.Flags
}

// MyRole resolves the caller's role, provisioning a candidate record for
// identities that have none yet.
func (h *UserHandler) MyRole(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	role, err := h.svc.ResolveRole(c.Request.Context(), userID, sessionEmail(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, RoleResponse{
		Role:  string(role),
		Flags: authz.FlagsFor(role),
	})
}
