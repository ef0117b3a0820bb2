package models

import (
	"time"
)

type PlanType string

const (
	PlanFree PlanType = "free"
	PlanPro  PlanType = "pro"
)

type PaymentMethod string

const (
	PaymentUPI    PaymentMethod = "upi"
	PaymentPayPal PaymentMethod = "paypal"
)

type UserPlan struct {
	Plan          PlanType      `json:"plan"`
	UpgradedAt    string        `json:"upgradedAt,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
}

// PaymentProof is a manually submitted payment reference. Nothing checks it
// against a gateway.
type PaymentProof struct {
	UTR       string        `json:"utr" binding:"required,min=6"`
	Amount    float64       `json:"amount" binding:"required,gte=1"`
	Method    PaymentMethod `json:"method" binding:"omitempty,oneof=upi paypal"`
	Timestamp string        `json:"timestamp"`
}

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID                string            `json:"id"`
	ConfirmationToken string            `json:"confirmationToken,omitempty"`
	SessionType       string            `json:"sessionType"`
	CustomerName      string            `json:"customerName"`
	CustomerEmail     string            `json:"customerEmail"`
	CustomerPhone     string            `json:"customerPhone,omitempty"`
	ScheduledAt       time.Time         `json:"scheduledAt"`
	Duration          int               `json:"duration"` // minutes
	Price             int               `json:"price"`    // INR
	Status            AppointmentStatus `json:"status"`
	MeetingURL        string            `json:"meetingUrl"`
	Notes             string            `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// AppointmentInput is the booking request body.
type AppointmentInput struct {
	SessionType   string    `json:"sessionType" binding:"required"`
	CustomerName  string    `json:"customerName" binding:"required,max=255"`
	CustomerEmail string    `json:"customerEmail" binding:"required,email"`
	CustomerPhone string    `json:"customerPhone" binding:"omitempty,max=32"`
	ScheduledAt   time.Time `json:"scheduledAt" binding:"required"`
	Notes         string    `json:"notes" binding:"omitempty,max=2000"`
}

// AppointmentPatch fields are applied only when set. Status changes are plain
// overwrites; any status can follow any other.
type AppointmentPatch struct {
	Status        *AppointmentStatus `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	ScheduledAt   *time.Time         `json:"scheduledAt"`
	CustomerPhone *string            `json:"customerPhone" binding:"omitempty,max=32"`
	Notes         *string            `json:"notes" binding:"omitempty,max=2000"`
}

func (p AppointmentPatch) Apply(a *Appointment) {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ScheduledAt != nil {
		a.ScheduledAt = *p.ScheduledAt
	}
	if p.CustomerPhone != nil {
		a.CustomerPhone = *p.CustomerPhone
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}
