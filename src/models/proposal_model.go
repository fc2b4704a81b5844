package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InvestmentProposal struct {
	Id                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Investor             primitive.ObjectID `json:"investor" bson:"investor"`
	Startup              primitive.ObjectID `json:"startup" bson:"startup"`
	FundingAmount        float64            `json:"fundingAmount" bson:"fundingAmount"`
	EquityPercentage     float64            `json:"equityPercentage" bson:"equityPercentage"`
	AdditionalConditions string             `json:"additionalConditions" bson:"additionalConditions"`
	Status               Status             `json:"status" bson:"status"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProposalDto is a proposal enriched with both parties' public profiles.
// ImpliedValuation is derived on read and never stored.
type ProposalDto struct {
	ID                   primitive.ObjectID `json:"id"`
	Investor             InvestorPublic     `json:"investor"`
	Startup              StartupPublic      `json:"startup"`
	FundingAmount        float64            `json:"fundingAmount"`
	EquityPercentage     float64            `json:"equityPercentage"`
	AdditionalConditions string             `json:"additionalConditions"`
	Status               Status             `json:"status"`
	ImpliedValuation     float64            `json:"impliedValuation"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// ImpliedValuation computes the post-money valuation the proposal implies.
// Validation rejects zero equity before a proposal is ever stored.
func (p *InvestmentProposal) ImpliedValuation() float64 {
	if p.EquityPercentage == 0 {
		return 0
	}
	return p.FundingAmount / p.EquityPercentage * 100
}
