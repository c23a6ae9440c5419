package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/domain/audit"
	"github.com/linskybing/formbuilder/internal/repository"
	"gorm.io/datatypes"
)

// LogAuditWithConsole captures request context synchronously, then writes the
// audit entry in the background. Package vars so tests can stub them out.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(ip, ua, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			log.Printf("[LogAudit] error: %v", err)
		}
	}()
}

var LogAudit = func(
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		if oldData, err = json.Marshal(before); err != nil {
			return err
		}
	}
	if after != nil {
		if newData, err = json.Marshal(after); err != nil {
			return err
		}
	}

	entry := &audit.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      datatypes.JSON(oldData),
		NewData:      datatypes.JSON(newData),
		IP:           ip,
		UserAgent:    ua,
		Description:  description,
	}
	return repo.CreateAuditLog(entry)
}
