package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleStartup  Role = "startup"
	RoleInvestor Role = "investor"
)

// Valid reports whether the role is one of the two marketplace roles.
func (r Role) Valid() bool {
	return r == RoleStartup || r == RoleInvestor
}

type User struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Role      Role               `json:"role" bson:"role"`
	Avatar    string             `json:"avatar" bson:"avatar"`
	Location  string             `json:"location" bson:"location"`
	Bio       string             `json:"bio" bson:"bio"`

	// Investor attributes.
	Focus           string `json:"focus,omitempty" bson:"focus,omitempty"`
	InvestmentRange string `json:"investmentRange,omitempty" bson:"investmentRange,omitempty"`

	// Startup attributes.
	Industry      string  `json:"industry,omitempty" bson:"industry,omitempty"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
	FundingNeeded float64 `json:"fundingNeeded,omitempty" bson:"fundingNeeded,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// InvestorPublic is the investor profile shape embedded in enriched responses.
type InvestorPublic struct {
	ID              primitive.ObjectID `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Avatar          string             `json:"avatar"`
	Location        string             `json:"location"`
	Bio             string             `json:"bio"`
	Focus           string             `json:"focus"`
	InvestmentRange string             `json:"investmentRange"`
}

// StartupPublic is the startup profile shape embedded in enriched responses.
type StartupPublic struct {
	ID            primitive.ObjectID `json:"id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Avatar        string             `json:"avatar"`
	Location      string             `json:"location"`
	Industry      string             `json:"industry"`
	Description   string             `json:"description"`
	FundingNeeded float64            `json:"fundingNeeded"`
}

func (u *User) PublicInvestor() InvestorPublic {
	return InvestorPublic{
		ID:              u.Id,
		Name:            u.Name,
		Email:           u.Email,
		Avatar:          u.Avatar,
		Location:        u.Location,
		Bio:             u.Bio,
		Focus:           u.Focus,
		InvestmentRange: u.InvestmentRange,
	}
}

func (u *User) PublicStartup() StartupPublic {
	return StartupPublic{
		ID:            u.Id,
		Name:          u.Name,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Location:      u.Location,
		Industry:      u.Industry,
		Description:   u.Description,
		FundingNeeded: u.FundingNeeded,
	}
}
