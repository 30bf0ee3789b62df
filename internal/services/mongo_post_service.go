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

type MongoPostService struct {
	postsCol *mongo.Collection
}

func NewMongoPostService(ctx context.Context, db *mongo.Database) *MongoPostService {
	col := db.Collection("posts")

	// Best-effort index for the date-descending feed.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	})

	return &MongoPostService{postsCol: col}
}

func (s *MongoPostService) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	post.ID = primitive.NewObjectID()
	post.Date = time.Now()
	if post.Likes == nil {
		post.Likes = []models.Like{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}

	if _, err := s.postsCol.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *MongoPostService) List(ctx context.Context) ([]models.Post, error) {
	cur, err := s.postsCol.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]models.Post, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoPostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	var post models.Post
	if err := s.postsCol.FindOne(ctx, bson.M{"_id": oid}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *MongoPostService) Delete(ctx context.Context, postID, userID string) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.User.Hex() != userID {
		return ErrNotAuthorized
	}

	_, err = s.postsCol.DeleteOne(ctx, bson.M{"_id": post.ID})
	return err
}

// Like prepends the caller to the likes list. The filter excludes posts
// the caller already liked so concurrent likes can never insert twice.
func (s *MongoPostService) Like(ctx context.Context, postID, userID string) ([]models.Like, error) {
	pid, uid, err := s.ids(postID, userID)
	if err != nil {
		return nil, err
	}

	like := models.Like{ID: primitive.NewObjectID(), User: uid}
	res, err := s.postsCol.UpdateOne(ctx,
		bson.M{"_id": pid, "likes.user": bson.M{"$ne": uid}},
		bson.M{"$push": bson.M{"likes": bson.M{"$each": []models.Like{like}, "$position": 0}}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		post, err := s.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}
		if post.LikedBy(uid) {
			return nil, ErrAlreadyLiked
		}
		return nil, ErrPostNotFound
	}

	return s.likes(ctx, postID)
}

func (s *MongoPostService) Unlike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	pid, uid, err := s.ids(postID, userID)
	if err != nil {
		return nil, err
	}

	res, err := s.postsCol.UpdateOne(ctx,
		bson.M{"_id": pid},
		bson.M{"$pull": bson.M{"likes": bson.M{"user": uid}}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrPostNotFound
	}
	if res.ModifiedCount == 0 {
		return nil, ErrNotLiked
	}

	return s.likes(ctx, postID)
}

func (s *MongoPostService) AddComment(ctx context.Context, postID string, comment models.Comment) ([]models.Comment, error) {
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	comment.ID = primitive.NewObjectID()
	comment.Date = time.Now()

	res, err := s.postsCol.UpdateOne(ctx,
		bson.M{"_id": pid},
		bson.M{"$push": bson.M{"comments": bson.M{"$each": []models.Comment{comment}, "$position": 0}}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrPostNotFound
	}

	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

func (s *MongoPostService) RemoveComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, ErrCommentNotFound
	}
	comment := post.CommentByID(cid)
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.User.Hex() != userID {
		return nil, ErrNotAuthorized
	}

	if _, err := s.postsCol.UpdateOne(ctx,
		bson.M{"_id": post.ID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": cid}}},
	); err != nil {
		return nil, err
	}

	updated, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}

// DeleteByUser removes every post owned by the user; used by the account
// deletion cascade.
func (s *MongoPostService) DeleteByUser(ctx context.Context, userID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}
	_, err = s.postsCol.DeleteMany(ctx, bson.M{"user": uid})
	return err
}

func (s *MongoPostService) likes(ctx context.Context, postID string) ([]models.Like, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *MongoPostService) ids(postID, userID string) (primitive.ObjectID, primitive.ObjectID, error) {
	pid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrPostNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrUserNotFound
	}
	return pid, uid, nil
}
