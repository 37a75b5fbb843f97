package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/intervueapp/intervue/internal/services"
	"github.com/intervueapp/intervue/internal/utils"
	"github.com/sirupsen/logrus"
	svix "github.com/svix/svix-webhooks/go"
)

// WebhookHandler receives identity-provider user events. Payloads are
// svix-signed; anything that fails verification is rejected before it
// touches the database.
type WebhookHandler struct {
	users services.UserService
	wh    *svix.Webhook
	log   *logrus.Logger
}

func NewWebhookHandler(users services.UserService, wh *svix.Webhook, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{users: users, wh: wh, log: log}
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

func (h *WebhookHandler) HandleUserEvent(c *gin.Context) {
	const op = "WebhookHandler.HandleUserEvent"

	if h.wh == nil {
		writeError(c, utils.E(utils.CodeInternal, op, "webhook secret is not configured", nil))
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "failed to read body", err))
		return
	}

	if err := h.wh.Verify(payload, c.Request.Header); err != nil {
		h.log.WithError(err).Warn("webhook verification failed")
		writeError(c, utils.E(utils.CodeUnauthorized, op, "invalid signature", err))
		return
	}

	var evt webhookEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid payload", err))
		return
	}

	switch evt.Type {
	case "user.created", "user.updated":
		email := ""
		if len(evt.Data.EmailAddresses) > 0 {
			email = evt.Data.EmailAddresses[0].EmailAddress
		}
		name := strings.TrimSpace(evt.Data.FirstName + " " + evt.Data.LastName)

		if _, err := h.users.SyncExternal(c.Request.Context(), evt.Data.ID, name, email, evt.Data.ImageURL); err != nil {
			writeError(c, err)
			return
		}

	case "user.deleted":
		if err := h.users.DeleteExternal(c.Request.Context(), evt.Data.ID); err != nil {
			writeError(c, err)
			return
		}

	default:
		h.log.WithField("type", evt.Type).Debug("ignoring webhook event")
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
