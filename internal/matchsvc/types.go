// Package matchsvc provides the HTTP client for the remote candidate-matching service.
package matchsvc

import "github.com/go-playground/validator/v10"

// SearchRequest represents the body for POST /api/v1/search.
type SearchRequest struct {
	Query          string   `json:"query" validate:"required,min=10"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// Candidate represents a single evaluated candidate returned by the ranking
// pipeline. Score, rationale and evidence are computed by the remote service
// and treated as opaque here.
type Candidate struct {
	Name      string   `json:"name"`
	Role      string   `json:"role,omitempty"`
	Score     int      `json:"score"`
	Rationale string   `json:"rationale"`
	Evidence  []string `json:"evidence"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
}

// SearchResponse represents the response for POST /api/v1/search.
type SearchResponse struct {
	Query   string      `json:"query"`
	Results []Candidate `json:"results"`
}

// Resume represents the response for GET /api/v1/resume/{name}.
type Resume struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
