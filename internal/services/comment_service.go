package services

import (
	"context"

	"github.com/intervueapp/intervue/internal/authz"
	"github.com/intervueapp/intervue/internal/models"
	mongorepo "github.com/intervueapp/intervue/internal/repositories/mongo"
	"github.com/intervueapp/intervue/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService interface {
	Create(ctx context.Context, role models.Role, interviewerID, interviewID, content string, rating int) (*models.Comment, error)
	ListByInterview(ctx context.Context, interviewID string) ([]models.Comment, error)
}

type commentService struct {
	comments mongorepo.CommentRepository
}

func NewCommentService(comments mongorepo.CommentRepository) CommentService {
	return &commentService{comments: comments}
}

func (s *commentService) Create(ctx context.Context, role models.Role, interviewerID, interviewID, content string, rating int) (*models.Comment, error) {
	const op = "CommentService.Create"

	if !authz.CanComment(role) {
		return nil, utils.E(utils.CodeForbidden, op, "only interviewers can leave comments", nil)
	}

	oid, err := primitive.ObjectIDFromHex(interviewID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid interview id", err)
	}
	if content == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "content is required", nil)
	}
	if rating < 1 || rating > 5 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "rating must be between 1 and 5", nil)
	}

	c := &models.Comment{
		InterviewID:   oid,
		InterviewerID: interviewerID,
		Content:       content,
		Rating:        rating,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create comment", err)
	}
	return c, nil
}

func (s *commentService) ListByInterview(ctx context.Context, interviewID string) ([]models.Comment, error) {
	const op = "CommentService.ListByInterview"

	oid, err := primitive.ObjectIDFromHex(interviewID)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid interview id", err)
	}

	comments, err := s.comments.ListByInterview(ctx, oid)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list comments", err)
	}
	return comments, nil
}
