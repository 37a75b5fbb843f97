package mongo

import (
	"context"
	"time"

	"github.com/intervueapp/intervue/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	ListByInterview(ctx context.Context, interviewID primitive.ObjectID) ([]models.Comment, error)
}

type commentRepo struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepository {
	return &commentRepo{col: db.Collection("comments")}
}

func (r *commentRepo) Create(ctx context.Context, c *models.Comment) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

// ListByInterview returns comments newest-first.
func (r *commentRepo) ListByInterview(ctx context.Context, interviewID primitive.ObjectID) ([]models.Comment, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"interview_id": interviewID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []models.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
