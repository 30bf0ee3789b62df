package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnect/backend/internal/models"
)

type MongoProfileService struct {
	profilesCol *mongo.Collection
}

func NewMongoProfileService(ctx context.Context, db *mongo.Database) *MongoProfileService {
	col := db.Collection("profiles")

	// Best-effort indexes.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoProfileService{profilesCol: col}
}

func (s *MongoProfileService) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	var prof models.Profile
	if err := s.profilesCol.FindOne(ctx, bson.M{"user": oid}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &prof, nil
}

func (s *MongoProfileService) List(ctx context.Context) ([]models.Profile, error) {
	cur, err := s.profilesCol.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := make([]models.Profile, 0)
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert applies only the fields present in the request so a partial
// update never clears stored values, and inserts the profile if the user
// has none yet.
func (s *MongoProfileService) Upsert(ctx context.Context, userID string, req *models.UpsertProfileRequest) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	now := time.Now()

	set := bson.M{
		"status": req.Status,
		"skills": models.SplitSkills(req.Skills),
	}
	if req.Company != nil {
		set["company"] = *req.Company
	}
	if req.Website != nil {
		set["website"] = *req.Website
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.GithubUsername != nil {
		set["githubusername"] = *req.GithubUsername
	}
	if req.YouTube != nil {
		set["social.youtube"] = *req.YouTube
	}
	if req.Twitter != nil {
		set["social.twitter"] = *req.Twitter
	}
	if req.Facebook != nil {
		set["social.facebook"] = *req.Facebook
	}
	if req.LinkedIn != nil {
		set["social.linkedin"] = *req.LinkedIn
	}
	if req.Instagram != nil {
		set["social.instagram"] = *req.Instagram
	}

	setOnInsert := bson.M{
		"user":       oid,
		"date":       now,
		"experience": []models.Experience{},
		"education":  []models.Education{},
	}

	_, err = s.profilesCol.UpdateOne(
		ctx,
		bson.M{"user": oid},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}

	return s.GetByUserID(ctx, userID)
}

func (s *MongoProfileService) AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Profile, error) {
	return s.pushEntry(ctx, userID, "experience", exp)
}

func (s *MongoProfileService) AddEducation(ctx context.Context, userID string, edu models.Education) (*models.Profile, error) {
	return s.pushEntry(ctx, userID, "education", edu)
}

// RemoveExperience filters the entry out by id. An id that matches
// nothing (including a malformed one) leaves the list untouched and is
// not an error.
func (s *MongoProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error) {
	return s.pullEntry(ctx, userID, "experience", expID)
}

func (s *MongoProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error) {
	return s.pullEntry(ctx, userID, "education", eduID)
}

func (s *MongoProfileService) Delete(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrProfileNotFound
	}
	_, err = s.profilesCol.DeleteOne(ctx, bson.M{"user": oid})
	return err
}

func (s *MongoProfileService) pushEntry(ctx context.Context, userID, field string, entry interface{}) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	res, err := s.profilesCol.UpdateOne(ctx, bson.M{"user": oid}, bson.M{
		"$push": bson.M{field: bson.M{"$each": []interface{}{entry}, "$position": 0}},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrProfileNotFound
	}
	return s.GetByUserID(ctx, userID)
}

func (s *MongoProfileService) pullEntry(ctx context.Context, userID, field, entryID string) (*models.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	entryOID, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		// Nothing can match a malformed sub-id; return the profile as-is.
		return s.GetByUserID(ctx, userID)
	}

	res, err := s.profilesCol.UpdateOne(ctx, bson.M{"user": oid}, bson.M{
		"$pull": bson.M{field: bson.M{"_id": entryOID}},
	})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrProfileNotFound
	}
	return s.GetByUserID(ctx, userID)
}
