package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/pkg/response"
)

type Handlers struct {
	Form       *FormHandler
	Submission *SubmissionHandler
	Audit      *AuditHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Form:       NewFormHandler(svc.Form),
		Submission: NewSubmissionHandler(svc.Submission),
		Audit:      NewAuditHandler(svc.Audit),
	}
}

// writeError maps a service failure onto the wire: validation -> 400 with
// details, not-found -> 404 with message, anything else -> 500 with a
// generic body. The original error only goes to the server log.
func writeError(c *gin.Context, err error) {
	var vErr *application.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Validation error", Details: vErr.Details})
	case errors.Is(err, application.ErrFormNotFound),
		errors.Is(err, application.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Message: err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Something went wrong!"})
	}
}
