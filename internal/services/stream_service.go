package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/intervueapp/intervue/internal/utils"
)

// StreamService mints user tokens for the external video provider. The
// provider accepts HS256 JWTs signed with the API secret and carrying
// the user id; call creation, devices and recording all live on the
// provider side.
type StreamService interface {
	UserToken(userID string) (string, string, error) // token, api key
}

type streamService struct {
	apiKey    string
	apiSecret []byte
	tokenTTL  time.Duration
}

func NewStreamService(apiKey, apiSecret string) StreamService {
	return &streamService{
		apiKey:    apiKey,
		apiSecret: []byte(apiSecret),
		tokenTTL:  time.Hour,
	}
}

func (s *streamService) UserToken(userID string) (string, string, error) {
	const op = "StreamService.UserToken"

	if userID == "" {
		return "", "", utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if s.apiKey == "" || len(s.apiSecret) == 0 {
		return "", "", utils.E(utils.CodeInternal, op, "video provider credentials are not configured", nil)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.apiSecret)
	if err != nil {
		return "", "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return token, s.apiKey, nil
}
