package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationConnectionAccepted NotificationType = "connectionAccepted"
	NotificationProposalReceived   NotificationType = "proposalReceived"
	NotificationProposalAccepted   NotificationType = "proposalAccepted"
	NotificationProposalDeclined   NotificationType = "proposalDeclined"
)

type Notification struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Recipient   primitive.ObjectID `json:"recipient" bson:"recipient"`
	Type        NotificationType   `json:"type" bson:"type"`
	RelatedUser primitive.ObjectID `json:"relatedUser" bson:"relatedUser"`
	// RelatedProposal is set on proposal notifications only.
	RelatedProposal primitive.ObjectID `json:"relatedProposal,omitempty" bson:"relatedProposal,omitempty"`
	Read            bool               `json:"read" bson:"read"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type NotificationDto struct {
	ID              primitive.ObjectID `json:"id"`
	Recipient       primitive.ObjectID `json:"recipient"`
	Type            NotificationType   `json:"type"`
	RelatedUser     *PostAuthor        `json:"relatedUser,omitempty"`
	RelatedProposal primitive.ObjectID `json:"relatedProposal,omitempty"`
	Read            bool               `json:"read"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}
