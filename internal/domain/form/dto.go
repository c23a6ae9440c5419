package form

import "strings"

// FormInputDTO is the payload for both create and update: updates replace
// title and fields wholesale, there is no partial-field semantics.
type FormInputDTO struct {
	Title  string  `json:"title" validate:"required"`
	Fields []Field `json:"fields" validate:"required,min=1,dive"`
}

// Normalize trims the title and every field label. Called after validation
// succeeded, before the payload is handed to the repository.
func (in *FormInputDTO) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	for i := range in.Fields {
		in.Fields[i].Label = strings.TrimSpace(in.Fields[i].Label)
	}
}
