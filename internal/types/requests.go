package types

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CareerRequest is the body of POST /career
type CareerRequest struct {
	Career string `json:"career"`
	Level  string `json:"level"`
}

// RecommendRequest is the body of POST /recommend
type RecommendRequest struct {
	Skills []string `json:"skills" validate:"min=1,dive,required"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	return validate.Struct(r)
}

// SkillGapRequest is the body of POST /skill-gap
type SkillGapRequest struct {
	Career string   `json:"career"`
	Skills []string `json:"skills" validate:"dive,required"`
}

// Validate validates the SkillGapRequest using the validator.
func (r *SkillGapRequest) Validate() error {
	return validate.Struct(r)
}

// CompareRequest is the body of POST /compare
type CompareRequest struct {
	Careers []string `json:"careers" validate:"max=3,dive,required"`
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	return validate.Struct(r)
}

// SearchRequest is the body of POST /onet/search
type SearchRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	return validate.Struct(r)
}
