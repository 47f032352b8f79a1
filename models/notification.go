package models

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationChargeApproved NotificationType = "CHARGE_APPROVED"
	NotificationPlanApproved   NotificationType = "PLAN_APPROVED"
	NotificationTopUpApproved  NotificationType = "TOPUP_APPROVED"
)

type Notification struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string           `json:"userId" gorm:"type:uuid;not null;index"`
	Type      NotificationType `json:"type" gorm:"type:varchar(40)"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Payload   datatypes.JSON   `json:"payload"`
	ReadAt    *time.Time       `json:"readAt"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
