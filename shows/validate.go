package shows

import (
	"regexp"

	"showsvc/models"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidatePayload checks the create/patch body and returns every violation.
// An empty result means the payload is acceptable.
func ValidatePayload(p models.ShowPayload) []FieldError {
	var violations []FieldError

	if p.Name == "" {
		violations = append(violations, FieldError{Field: "name", Message: "name should not be empty"})
	}
	if p.Image == "" {
		violations = append(violations, FieldError{Field: "image", Message: "image should not be empty"})
	} else if !alphanumeric.MatchString(p.Image) {
		violations = append(violations, FieldError{Field: "image", Message: "image must contain only letters and numbers"})
	}
	if p.Type == "" {
		violations = append(violations, FieldError{Field: "type", Message: "type should not be empty"})
	}

	return violations
}
