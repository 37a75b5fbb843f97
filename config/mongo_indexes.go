package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := db.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("uniq_email").
				SetUnique(true),
		},
		// webhook upserts match on the identity-provider id
		{
			Keys: bson.D{{Key: "external_id", Value: 1}},
			Options: options.Index().
				SetName("by_external_id").
				SetSparse(true),
		},
	})
	if err != nil {
		return err
	}

	interviews := db.Collection("interviews")
	_, err = interviews.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// one interview per video-provider call
		{
			Keys: bson.D{{Key: "stream_call_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_stream_call_id").
				SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "candidate_id", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("by_candidate_start"),
		},
	})
	if err != nil {
		return err
	}

	comments := db.Collection("comments")
	_, err = comments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// comments list newest-first per interview
		{
			Keys:    bson.D{{Key: "interview_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_interview_created"),
		},
	})
	return err
}
