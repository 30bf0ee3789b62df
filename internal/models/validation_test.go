package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		req        RegisterRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"},
		},
		{
			name:       "missing name",
			req:        RegisterRequest{Email: "ada@example.com", Password: "secret1"},
			wantFields: []string{"name"},
		},
		{
			name:       "bad email",
			req:        RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "secret1"},
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			req:        RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "abc"},
			wantFields: []string{"password"},
		},
		{
			name:       "everything wrong",
			req:        RegisterRequest{},
			wantFields: []string{"name", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.Empty(t, (&LoginRequest{Email: "a@b.co", Password: "x"}).Validate())
	assert.Contains(t, (&LoginRequest{Password: "x"}).Validate(), "email")
	assert.Contains(t, (&LoginRequest{Email: "a@b.co"}).Validate(), "password")
}

func TestUpsertProfileRequestValidate(t *testing.T) {
	ok := UpsertProfileRequest{Status: "Developer", Skills: "go, js"}
	assert.Empty(t, ok.Validate())

	missing := UpsertProfileRequest{Skills: " , "}
	errs := missing.Validate()
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "skills")
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"js", "node"}, SplitSkills("js, node"))
	assert.Equal(t, []string{"go"}, SplitSkills("  go  "))
	assert.Empty(t, SplitSkills(",, ,"))
}

func TestExperienceRequest(t *testing.T) {
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	errs := (&ExperienceRequest{}).Validate()
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "company")
	assert.Contains(t, errs, "from")

	req := ExperienceRequest{Title: "Dev", Company: "Acme", From: from, To: &to, Current: true}
	assert.Empty(t, req.Validate())

	// A current position drops its end date.
	entry := req.Entry()
	assert.Nil(t, entry.To)
	assert.False(t, entry.ID.IsZero())

	req.Current = false
	entry = req.Entry()
	assert.Equal(t, to, *entry.To)
}

func TestEducationRequestValidate(t *testing.T) {
	errs := (&EducationRequest{}).Validate()
	assert.Contains(t, errs, "school")
	assert.Contains(t, errs, "degree")
	assert.Contains(t, errs, "fieldofstudy")
	assert.Contains(t, errs, "from")
}

func TestPostRequestValidate(t *testing.T) {
	assert.Empty(t, (&PostRequest{Text: "hello"}).Validate())
	assert.Contains(t, (&PostRequest{}).Validate(), "text")
}
