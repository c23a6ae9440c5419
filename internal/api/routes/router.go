package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/api/handlers"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/internal/repository"
	"github.com/linskybing/formbuilder/internal/web"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// init
	repos_instance := repository.NewRepositories(db)
	services_instance := application.New(repos_instance)
	handlers_instance := handlers.New(services_instance)

	// REST API
	forms := r.Group("/forms")
	{
		forms.GET("", handlers_instance.Form.ListForms)
		forms.POST("", handlers_instance.Form.CreateForm)
		forms.GET("/:id", handlers_instance.Form.GetFormByID)
		forms.PATCH("/:id", handlers_instance.Form.UpdateForm)
		forms.DELETE("/:id", handlers_instance.Form.DeleteForm)
	}

	submissions := r.Group("/submission")
	{
		submissions.GET("", handlers_instance.Submission.ListSubmissions)
		submissions.POST("/:formId", handlers_instance.Submission.CreateSubmission)
		submissions.GET("/form/:formId", handlers_instance.Submission.ListSubmissionsByForm)
		submissions.GET("/:submissionId", handlers_instance.Submission.GetSubmissionByID)
		submissions.DELETE("/:submissionId", handlers_instance.Submission.DeleteSubmission)
	}

	audit := r.Group("/audit/logs")
	{
		audit.GET("", handlers_instance.Audit.GetAuditLogs)
	}

	// server-rendered UI
	web.Register(r, services_instance)
}
