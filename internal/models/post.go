package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post snapshots the author's name and avatar at creation time so deleting
// or renaming the user never rewrites existing posts.
type Post struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User     primitive.ObjectID `json:"user" bson:"user"`
	Text     string             `json:"text" bson:"text"`
	Name     string             `json:"name" bson:"name"`
	Avatar   string             `json:"avatar" bson:"avatar"`
	Likes    []Like             `json:"likes" bson:"likes"`
	Comments []Comment          `json:"comments" bson:"comments"`
	Date     time.Time          `json:"date" bson:"date"`
}

type Like struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User primitive.ObjectID `json:"user" bson:"user"`
}

type Comment struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User   primitive.ObjectID `json:"user" bson:"user"`
	Text   string             `json:"text" bson:"text"`
	Name   string             `json:"name" bson:"name"`
	Avatar string             `json:"avatar" bson:"avatar"`
	Date   time.Time          `json:"date" bson:"date"`
}

type PostRequest struct {
	Text string `json:"text"`
}

func (r *PostRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Text == "" {
		errors["text"] = "Text is required"
	}

	return errors
}

// LikedBy reports whether userID already appears in the likes list.
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	for _, l := range p.Likes {
		if l.User == userID {
			return true
		}
	}
	return false
}

// CommentByID returns the comment with the given id, or nil.
func (p *Post) CommentByID(id primitive.ObjectID) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i]
		}
	}
	return nil
}
