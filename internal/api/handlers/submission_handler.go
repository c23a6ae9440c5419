package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/internal/domain/submission"
	"github.com/linskybing/formbuilder/pkg/response"
	"github.com/linskybing/formbuilder/pkg/utils"
)

type SubmissionHandler struct {
	service *application.SubmissionService
}

func NewSubmissionHandler(service *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// CreateSubmission godoc
// @Summary Submit a filled form
// @Tags submissions
// @Accept json
// @Produce json
// @Param formId path string true "Form ID"
// @Param payload body submission.SubmissionInputDTO true "Respondent identity and responses"
// @Success 201 {object} submission.FormSubmission
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /submission/{formId} [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var input submission.SubmissionInputDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid request body"})
		return
	}

	sub, err := h.service.CreateSubmission(c, c.Param("formId"), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ListSubmissions godoc
// @Summary List all submissions joined with their form titles
// @Tags submissions
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} response.Paginated
// @Router /submission [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	result, err := h.service.ListSubmissions(page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListSubmissionsByForm godoc
// @Summary List submissions for one form
// @Tags submissions
// @Produce json
// @Param formId path string true "Form ID"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} response.Paginated
// @Router /submission/form/{formId} [get]
func (h *SubmissionHandler) ListSubmissionsByForm(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	result, err := h.service.ListSubmissionsByForm(c.Param("formId"), page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSubmissionByID godoc
// @Summary Get submission by id
// @Tags submissions
// @Produce json
// @Param submissionId path string true "Submission ID"
// @Success 200 {object} submission.FormSubmission
// @Failure 404 {object} response.ErrorResponse "Submission not found"
// @Router /submission/{submissionId} [get]
func (h *SubmissionHandler) GetSubmissionByID(c *gin.Context) {
	sub, err := h.service.GetSubmission(c.Param("submissionId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// DeleteSubmission godoc
// @Summary Delete a submission (hard)
// @Tags submissions
// @Produce json
// @Param submissionId path string true "Submission ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Submission not found"
// @Router /submission/{submissionId} [delete]
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	if err := h.service.DeleteSubmission(c, c.Param("submissionId")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Submission deleted successfully"})
}
