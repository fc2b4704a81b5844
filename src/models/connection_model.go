package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Connection struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Investor  primitive.ObjectID `json:"investor" bson:"investor"`
	Startup   primitive.ObjectID `json:"startup" bson:"startup"`
	Status    Status             `json:"status" bson:"status"` // pending, accepted, declined
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Status is shared by connections and investment proposals: both start
// pending and end in accepted or declined, with no way back out.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// ConnectionWithInvestor is a connection enriched with the investor's
// public profile, returned to the startup side.
type ConnectionWithInvestor struct {
	ID        primitive.ObjectID `json:"id"`
	Investor  InvestorPublic     `json:"investor"`
	Startup   primitive.ObjectID `json:"startup"`
	Status    Status             `json:"status"`
	Message   string             `json:"message"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ConnectionWithStartup is a connection enriched with the startup's
// public profile, returned to the investor side.
type ConnectionWithStartup struct {
	ID        primitive.ObjectID `json:"id"`
	Investor  primitive.ObjectID `json:"investor"`
	Startup   StartupPublic      `json:"startup"`
	Status    Status             `json:"status"`
	Message   string             `json:"message"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
