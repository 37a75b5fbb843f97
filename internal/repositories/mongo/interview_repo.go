package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/intervueapp/intervue/internal/models"
	"github.com/intervueapp/intervue/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InterviewRepository interface {
	Create(ctx context.Context, iv *models.Interview) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Interview, error)
	GetByStreamCallID(ctx context.Context, streamCallID string) (*models.Interview, error)
	List(ctx context.Context) ([]models.Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error)
	// UpdateStatus sets the stored status and, when endTime > 0, the end
	// time. Returns the updated document.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InterviewStatus, endTime int64) (*models.Interview, error)
}

type interviewRepo struct {
	col *mongo.Collection
}

func NewInterviewRepo(db *mongo.Database) InterviewRepository {
	return &interviewRepo{col: db.Collection("interviews")}
}

func (r *interviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	now := time.Now().UTC()
	if iv.CreatedAt.IsZero() {
		iv.CreatedAt = now
	}
	iv.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, iv)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		iv.ID = oid
	}
	return nil
}

func (r *interviewRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Interview, error) {
	var iv models.Interview
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &iv, err
}

func (r *interviewRepo) GetByStreamCallID(ctx context.Context, streamCallID string) (*models.Interview, error) {
	var iv models.Interview
	err := r.col.FindOne(ctx, bson.M{"stream_call_id": streamCallID}).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &iv, err
}

func (r *interviewRepo) List(ctx context.Context) ([]models.Interview, error) {
	return r.find(ctx, bson.M{})
}

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	return r.find(ctx, bson.M{"candidate_id": candidateID})
}

func (r *interviewRepo) find(ctx context.Context, filter bson.M) ([]models.Interview, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Interview
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *interviewRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InterviewStatus, endTime int64) (*models.Interview, error) {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if endTime > 0 {
		set["end_time"] = endTime
	}

	var iv models.Interview
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&iv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}
