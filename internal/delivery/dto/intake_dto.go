package dto

// IntakeRequest carries the upfront record count for the hospital intake flow.
type IntakeRequest struct {
	Count int `validate:"required,gte=1"`
}
