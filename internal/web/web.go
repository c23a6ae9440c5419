package web

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/internal/domain/submission"
	"github.com/linskybing/formbuilder/pkg/utils"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler serves the server-rendered views: form list, create/edit,
// view/fill, and the submission views. Pages talk back to the REST API for
// mutations; client-side checks are a UX courtesy, the API stays
// authoritative.
type Handler struct {
	forms       *application.FormService
	submissions *application.SubmissionService
	policy      *bluemonday.Policy
}

func Register(r *gin.Engine, svc *application.Services) {
	h := &Handler{
		forms:       svc.Form,
		submissions: svc.Submission,
		policy:      bluemonday.StrictPolicy(),
	}

	funcs := template.FuncMap{
		// strips any markup a user typed into titles or labels
		"sanitize": func(s string) string { return h.policy.Sanitize(s) },
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/ui/forms")
	})

	ui := r.Group("/ui")
	{
		ui.GET("/forms", h.FormList)
		ui.GET("/forms/new", h.FormNew)
		ui.GET("/forms/:id", h.FormView)
		ui.GET("/forms/:id/edit", h.FormEdit)
		ui.GET("/forms/:id/fill", h.FormFill)
		ui.GET("/forms/:id/submissions", h.FormSubmissions)
		ui.GET("/submissions", h.SubmissionList)
		ui.GET("/submissions/:id", h.SubmissionView)
	}
}

// FieldRow is the per-field view model shared by the view, fill and
// submission display modes.
type FieldRow struct {
	Label      string
	IsCheckbox bool
	Required   bool
	Answered   bool
	Text       string
	Checked    bool
}

func fieldRows(fields []form.Field) []FieldRow {
	rows := make([]FieldRow, 0, len(fields))
	for _, fld := range fields {
		rows = append(rows, FieldRow{
			Label:      fld.Label,
			IsCheckbox: fld.Type == form.FieldCheckbox,
			Required:   fld.Required,
		})
	}
	return rows
}

func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong!"
	if errors.Is(err, application.ErrFormNotFound) || errors.Is(err, application.ErrSubmissionNotFound) {
		status = http.StatusNotFound
		message = err.Error()
	} else {
		log.Printf("web: %s: %v", c.Request.URL.Path, err)
	}
	c.HTML(status, "error.html", gin.H{"Status": status, "Message": message})
}

func (h *Handler) FormList(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	result, err := h.forms.ListForms(page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "forms_list.html", gin.H{
		"Result":   result,
		"HasPrev":  result.Page > 1,
		"HasNext":  result.Page < result.TotalPages,
		"PrevPage": result.Page - 1,
		"NextPage": result.Page + 1,
	})
}

func (h *Handler) FormNew(c *gin.Context) {
	c.HTML(http.StatusOK, "form_edit.html", gin.H{"FormID": ""})
}

// FormEdit reuses the create view; the page loads the current definition
// from the API and PATCHes the replacement back.
func (h *Handler) FormEdit(c *gin.Context) {
	f, err := h.forms.GetForm(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "form_edit.html", gin.H{"FormID": f.ID})
}

func (h *Handler) FormView(c *gin.Context) {
	f, err := h.forms.GetForm(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "form_view.html", gin.H{
		"Form": f,
		"Rows": fieldRows(f.Fields),
	})
}

func (h *Handler) FormFill(c *gin.Context) {
	f, err := h.forms.GetForm(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "form_fill.html", gin.H{
		"Form": f,
		"Rows": fieldRows(f.Fields),
	})
}

// SubmissionRow is the list entry view model for both submission lists.
type SubmissionRow struct {
	ID        string
	FormID    string
	FormTitle string
	Name      string
	CreatedAt string
}

func (h *Handler) FormSubmissions(c *gin.Context) {
	f, err := h.forms.GetForm(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	page, limit := utils.ParsePagination(c)
	result, err := h.submissions.ListSubmissionsByForm(f.ID, page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	subs, _ := result.Data.([]submission.FormSubmission)
	rows := make([]SubmissionRow, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, SubmissionRow{
			ID:        s.ID,
			FormID:    s.FormID,
			FormTitle: f.Title,
			Name:      s.FirstName + " " + s.LastName,
			CreatedAt: s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.HTML(http.StatusOK, "submissions_list.html", gin.H{
		"Heading":  "Submissions for " + f.Title,
		"Rows":     rows,
		"Result":   result,
		"HasPrev":  result.Page > 1,
		"HasNext":  result.Page < result.TotalPages,
		"PrevPage": result.Page - 1,
		"NextPage": result.Page + 1,
		"BasePath": "/ui/forms/" + f.ID + "/submissions",
	})
}

func (h *Handler) SubmissionList(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	result, err := h.submissions.ListSubmissions(page, limit)
	if err != nil {
		h.renderError(c, err)
		return
	}

	joined, _ := result.Data.([]submission.WithFormTitle)
	rows := make([]SubmissionRow, 0, len(joined))
	for _, s := range joined {
		title := s.FormTitle
		if title == "" {
			title = "(deleted form)"
		}
		rows = append(rows, SubmissionRow{
			ID:        s.ID,
			FormID:    s.FormID,
			FormTitle: title,
			Name:      s.FirstName + " " + s.LastName,
			CreatedAt: s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.HTML(http.StatusOK, "submissions_list.html", gin.H{
		"Heading":  "All Submissions",
		"Rows":     rows,
		"Result":   result,
		"HasPrev":  result.Page > 1,
		"HasNext":  result.Page < result.TotalPages,
		"PrevPage": result.Page - 1,
		"NextPage": result.Page + 1,
		"BasePath": "/ui/submissions",
	})
}

// SubmissionView shows a recorded submission read-only. Field order follows
// the owning form when it still exists; for a deleted form the recorded
// labels are listed alphabetically instead.
func (h *Handler) SubmissionView(c *gin.Context) {
	sub, err := h.submissions.GetSubmission(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	responses := sub.Responses.Data()
	var rows []FieldRow
	formTitle := "(deleted form)"

	f, err := h.forms.GetForm(sub.FormID)
	if err == nil {
		formTitle = f.Title
		for _, fld := range f.Fields {
			row := FieldRow{
				Label:      fld.Label,
				IsCheckbox: fld.Type == form.FieldCheckbox,
				Required:   fld.Required,
			}
			if val, ok := responses[fld.Label]; ok {
				row.Answered = true
				row.Text = val.Text
				row.Checked = val.Checked
			}
			rows = append(rows, row)
		}
	} else if errors.Is(err, application.ErrFormNotFound) {
		labels := make([]string, 0, len(responses))
		for label := range responses {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			val := responses[label]
			rows = append(rows, FieldRow{
				Label:      label,
				IsCheckbox: val.Kind == form.FieldCheckbox,
				Answered:   true,
				Text:       val.Text,
				Checked:    val.Checked,
			})
		}
	} else {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "submission_view.html", gin.H{
		"Submission": sub,
		"FormTitle":  formTitle,
		"Rows":       rows,
	})
}
