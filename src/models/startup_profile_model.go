package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StartupProfile struct {
	Id            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User          primitive.ObjectID `json:"user" bson:"user"`
	StartupName   string             `json:"startupName" bson:"startupName"`
	Location      string             `json:"location" bson:"location"`
	Industry      string             `json:"industry" bson:"industry"`
	Description   string             `json:"description" bson:"description"`
	FundingNeeded float64            `json:"fundingNeeded" bson:"fundingNeeded"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
