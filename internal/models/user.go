package models

import (
	"net/mail"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Avatar   string             `json:"avatar" bson:"avatar"`
	Date     time.Time          `json:"date" bson:"date"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (r *RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if !isEmail(r.Email) {
		errors["email"] = "Please enter a valid email"
	}
	if len(r.Password) < 6 {
		errors["password"] = "Please enter a password with 6 or more characters"
	}

	return errors
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if !isEmail(r.Email) {
		errors["email"] = "Please enter a valid email"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

func isEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
