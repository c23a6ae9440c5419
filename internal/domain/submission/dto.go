package submission

// SubmissionInputDTO is the fill payload. Respondent identity travels in the
// body and is validated server-side, never taken from URL parameters.
type SubmissionInputDTO struct {
	FirstName string      `json:"firstName" validate:"required"`
	LastName  string      `json:"lastName" validate:"required"`
	Responses ResponseMap `json:"responses" validate:"required"`
}
