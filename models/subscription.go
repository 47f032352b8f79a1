package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "ACTIVE"
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
	SubscriptionPending SubscriptionStatus = "PENDING"
)

type Subscription struct {
	ID        string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string             `json:"userId" gorm:"type:uuid;not null;index:ux_subscriptions_user_plan,unique,priority:1"`
	PlanID    string             `json:"planId" gorm:"type:uuid;not null;index:ux_subscriptions_user_plan,unique,priority:2"`
	Status    SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	PeriodEnd time.Time          `json:"periodEnd"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
