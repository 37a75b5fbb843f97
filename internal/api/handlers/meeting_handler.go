package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/intervueapp/intervue/internal/services"
)

type MeetingHandler struct {
	stream services.StreamService
}

func NewMeetingHandler(stream services.StreamService) *MeetingHandler {
	return &MeetingHandler{stream: stream}
}

type MeetingTokenResponse struct {
	Token  string `json:"token"`
	APIKey string `json:"apiKey"`
	UserID string `json:"userId"`
}

// Token mints a video-provider user token for the session identity. The
// client passes it to the call SDK to join.
func (h *MeetingHandler) Token(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	token, apiKey, err := h.stream.UserToken(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MeetingTokenResponse{
		Token:  token,
		APIKey: apiKey,
		UserID: userID,
	})
}
