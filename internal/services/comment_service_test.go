package services

import (
	"context"
	"testing"

	"github.com/intervueapp/intervue/internal/models"
	"github.com/intervueapp/intervue/internal/utils"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCommentRepo struct {
	comments []models.Comment
}

func (m *mockCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	c.ID = primitive.NewObjectID()
	m.comments = append(m.comments, *c)
	return nil
}

func (m *mockCommentRepo) ListByInterview(ctx context.Context, interviewID primitive.ObjectID) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.InterviewID == interviewID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCommentService_Create(t *testing.T) {
	repo := &mockCommentRepo{}
	svc := NewCommentService(repo)

	interviewID := primitive.NewObjectID()

	c, err := svc.Create(context.Background(), models.RoleInterviewer, "int-1", interviewID.Hex(), "solid problem solving", 4)
	require.NoError(t, err)
	require.Equal(t, interviewID, c.InterviewID)
	require.Equal(t, "int-1", c.InterviewerID)
	require.Equal(t, 4, c.Rating)
	require.False(t, c.ID.IsZero())
}

func TestCommentService_Create_AdminAllowed(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{})

	_, err := svc.Create(context.Background(), models.RoleAdmin, "adm-1", primitive.NewObjectID().Hex(), "fine", 3)
	require.NoError(t, err)
}

func TestCommentService_Create_CandidateForbidden(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{})

	_, err := svc.Create(context.Background(), models.RoleCandidate, "cand-1", primitive.NewObjectID().Hex(), "nice try", 5)
	require.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestCommentService_Create_Validation(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{})
	interviewID := primitive.NewObjectID().Hex()

	tests := []struct {
		name        string
		interviewID string
		content     string
		rating      int
	}{
		{"malformed interview id", "not-an-oid", "ok", 3},
		{"empty content", interviewID, "", 3},
		{"rating below range", interviewID, "ok", 0},
		{"rating above range", interviewID, "ok", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), models.RoleInterviewer, "int-1", tt.interviewID, tt.content, tt.rating)
			require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestCommentService_Create_RatingBounds(t *testing.T) {
	svc := NewCommentService(&mockCommentRepo{})
	interviewID := primitive.NewObjectID().Hex()

	// 1 and 5 are inclusive bounds
	for _, rating := range []int{1, 5} {
		_, err := svc.Create(context.Background(), models.RoleInterviewer, "int-1", interviewID, "ok", rating)
		require.NoError(t, err)
	}
}

func TestCommentService_ListByInterview(t *testing.T) {
	repo := &mockCommentRepo{}
	svc := NewCommentService(repo)

	interviewID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	_, err := svc.Create(context.Background(), models.RoleInterviewer, "int-1", interviewID.Hex(), "a", 3)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), models.RoleInterviewer, "int-2", otherID.Hex(), "b", 4)
	require.NoError(t, err)

	list, err := svc.ListByInterview(context.Background(), interviewID.Hex())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "a", list[0].Content)

	_, err = svc.ListByInterview(context.Background(), "bogus")
	require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
