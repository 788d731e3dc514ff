package utils

import (
	"encoding/json"

	"hotel-reservation-server/models"
	"hotel-reservation-server/storage"
)

// Audit records a write-path action (booking created/cancelled, promotion,
// room update) with optional before/after snapshots. Best effort: a failed
// audit write never fails the operation it describes.
func Audit(actorType string, actorID uint, action, resourceType string, resourceID uint, before interface{}, after interface{}) {
	var beforeStr, afterStr string
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			beforeStr = string(b)
		}
	}
	if after != nil {
		if a, err := json.Marshal(after); err == nil {
			afterStr = string(a)
		}
	}
	log := models.AuditLog{
		ActorType:    actorType,
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BeforeJSON:   beforeStr,
		AfterJSON:    afterStr,
	}
	storage.DB.Create(&log)
}
