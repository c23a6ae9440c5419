package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/pkg/response"
	"github.com/linskybing/formbuilder/pkg/utils"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Param payload body form.FormInputDTO true "Form definition"
// @Success 201 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.FormInputDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid request body"})
		return
	}

	f, err := h.service.CreateForm(c, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, f)
}

// ListForms godoc
// @Summary List forms with pagination
// @Tags forms
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} response.Paginated
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	result, err := h.service.ListForms(page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFormByID godoc
// @Summary Get form by id
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} form.Form
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (h *FormHandler) GetFormByID(c *gin.Context) {
	f, err := h.service.GetForm(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

// UpdateForm godoc
// @Summary Replace a form's title and fields
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param payload body form.FormInputDTO true "Full replacement payload"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Validation error"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [patch]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	var input form.FormInputDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid request body"})
		return
	}

	f, err := h.service.UpdateForm(c, c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

// DeleteForm godoc
// @Summary Delete a form (soft)
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	if err := h.service.DeleteForm(c, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted successfully"})
}
