package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records a mutating operation against a form or submission.
// Append-only; written in the background so request latency is unaffected.
type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Action       string         `json:"action" gorm:"index"`
	ResourceType string         `json:"resource_type" gorm:"index"`
	ResourceID   string         `json:"resource_id" gorm:"size:36;index"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	IP           string         `json:"ip"`
	UserAgent    string         `json:"user_agent"`
	Description  string         `json:"description"`
	CreatedAt    time.Time      `json:"created_at"`
}
