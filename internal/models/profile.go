package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the public developer profile keyed by user id. At most one
// profile exists per user; the user field carries a unique index.
type Profile struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Company        string             `json:"company,omitempty" bson:"company,omitempty"`
	Website        string             `json:"website,omitempty" bson:"website,omitempty"`
	Location       string             `json:"location,omitempty" bson:"location,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Skills         []string           `json:"skills" bson:"skills"`
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
	GithubUsername string             `json:"githubusername,omitempty" bson:"githubusername,omitempty"`
	Experience     []Experience       `json:"experience" bson:"experience"`
	Education      []Education        `json:"education" bson:"education"`
	Social         Social             `json:"social" bson:"social"`
	Date           time.Time          `json:"date" bson:"date"`
}

type Experience struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Company     string             `json:"company" bson:"company"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time          `json:"from" bson:"from"`
	To          *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool               `json:"current" bson:"current"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

type Education struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	School       string             `json:"school" bson:"school"`
	Degree       string             `json:"degree" bson:"degree"`
	FieldOfStudy string             `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time          `json:"from" bson:"from"`
	To           *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool               `json:"current" bson:"current"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
}

type Social struct {
	YouTube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

// UpsertProfileRequest carries the create-or-update payload. Optional
// fields are pointers so an omitted field never overwrites a stored value.
type UpsertProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         string  `json:"status"`
	Skills         string  `json:"skills"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	YouTube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	LinkedIn       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

func (r *UpsertProfileRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Status) == "" {
		errors["status"] = "Status is required"
	}
	if len(SplitSkills(r.Skills)) == 0 {
		errors["skills"] = "Skills is required"
	}

	return errors
}

// SplitSkills normalizes a comma-separated skills string into a list of
// trimmed, non-empty entries.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			skills = append(skills, t)
		}
	}
	return skills
}

type ExperienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

func (r *ExperienceRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title == "" {
		errors["title"] = "Title is required"
	}
	if r.Company == "" {
		errors["company"] = "Company is required"
	}
	if r.From.IsZero() {
		errors["from"] = "From date is required"
	}

	return errors
}

// Entry builds the Experience document, dropping the end date when the
// position is marked current.
func (r *ExperienceRequest) Entry() Experience {
	exp := Experience{
		ID:          primitive.NewObjectID(),
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		From:        r.From,
		To:          r.To,
		Current:     r.Current,
		Description: r.Description,
	}
	if exp.Current {
		exp.To = nil
	}
	return exp
}

type EducationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func (r *EducationRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.School == "" {
		errors["school"] = "School is required"
	}
	if r.Degree == "" {
		errors["degree"] = "Degree is required"
	}
	if r.FieldOfStudy == "" {
		errors["fieldofstudy"] = "Field of study is required"
	}
	if r.From.IsZero() {
		errors["from"] = "From date is required"
	}

	return errors
}

func (r *EducationRequest) Entry() Education {
	edu := Education{
		ID:           primitive.NewObjectID(),
		School:       r.School,
		Degree:       r.Degree,
		FieldOfStudy: r.FieldOfStudy,
		From:         r.From,
		To:           r.To,
		Current:      r.Current,
		Description:  r.Description,
	}
	if edu.Current {
		edu.To = nil
	}
	return edu
}

// GithubRepo is the subset of the GitHub repository payload surfaced to
// clients.
type GithubRepo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stargazers  int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}
