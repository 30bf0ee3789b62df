package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect/backend/internal/models"
)

type MongoUserService struct {
	usersCol *mongo.Collection
}

func NewMongoUserService(ctx context.Context, db *mongo.Database) *MongoUserService {
	col := db.Collection("users")

	// Best-effort indexes.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoUserService{usersCol: col}
}

func (s *MongoUserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.usersCol.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		return nil, ErrEmailExists
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Avatar:   GravatarURL(req.Email),
		Date:     time.Now(),
	}

	if _, err := s.usersCol.InsertOne(ctx, user); err != nil {
		// A racing registration hit the unique email index first.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (s *MongoUserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.usersCol.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		// Same error as a password mismatch so callers cannot probe
		// which emails are registered.
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *MongoUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.usersCol.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

func (s *MongoUserService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}
	_, err = s.usersCol.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
