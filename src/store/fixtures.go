package store

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mesh-apac/mesh-backend/src/models"
)

// SeedDemoData loads a small APAC marketplace dataset into the store so
// the frontend can be developed without registering accounts by hand.
// Every demo account uses the password "password123".
func SeedDemoData(ctx context.Context, s *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 11)
	if err != nil {
		return err
	}

	startups := []models.User{
		{
			FirstName: "Tech", LastName: "Innovate", Name: "TechInnovate",
			Email: "tech@innovate.com", Role: models.RoleStartup,
			Location: "Singapore", Industry: "Technology",
			Description:   "AI-powered platform that helps businesses automate customer support and improve customer experience.",
			FundingNeeded: 750000,
		},
		{
			FirstName: "Green", LastName: "Energy", Name: "GreenEnergy Solutions",
			Email: "green@energy.com", Role: models.RoleStartup,
			Location: "Bangkok", Industry: "Cleantech",
			Description:   "Renewable energy solutions for residential and commercial properties across Southeast Asia.",
			FundingNeeded: 1200000,
		},
		{
			FirstName: "Fin", LastName: "Tech", Name: "FinTech Solutions",
			Email: "fin@tech.com", Role: models.RoleStartup,
			Location: "Singapore", Industry: "Fintech",
			Description:   "Blockchain-based platform for secure and transparent financial transactions.",
			FundingNeeded: 500000,
		},
	}

	investors := []models.User{
		{
			FirstName: "Alex", LastName: "Thompson", Name: "Alex Thompson",
			Email: "alex@investor.com", Role: models.RoleInvestor,
			Location: "Hong Kong", Focus: "Early-stage SaaS",
			InvestmentRange: "$100K - $1M",
			Bio:             "Former founder backing APAC software teams at seed.",
		},
		{
			FirstName: "Mei", LastName: "Chen", Name: "Mei Chen",
			Email: "mei@capital.com", Role: models.RoleInvestor,
			Location: "Taipei", Focus: "Climate and energy",
			InvestmentRange: "$500K - $5M",
			Bio:             "Partner at a cleantech fund investing across the region.",
		},
	}

	now := time.Now()
	for i := range startups {
		startups[i].Password = string(hash)
		startups[i].CreatedAt = now.Add(time.Duration(i) * time.Second)
		if err := s.Users.Insert(ctx, &startups[i]); err != nil {
			return err
		}
	}
	for i := range investors {
		investors[i].Password = string(hash)
		investors[i].CreatedAt = now.Add(time.Duration(i) * time.Second)
		if err := s.Users.Insert(ctx, &investors[i]); err != nil {
			return err
		}
	}

	for _, startup := range startups {
		profile := models.StartupProfile{
			User:          startup.Id,
			StartupName:   startup.Name,
			Location:      startup.Location,
			Industry:      startup.Industry,
			Description:   startup.Description,
			FundingNeeded: startup.FundingNeeded,
		}
		if _, err := s.Profiles.Upsert(ctx, &profile); err != nil {
			return err
		}
	}

	connections := []models.Connection{
		{
			Investor: investors[0].Id, Startup: startups[0].Id,
			Status:  models.StatusAccepted,
			Message: "Impressed by your support automation numbers, would love to talk.",
		},
		{
			Investor: investors[1].Id, Startup: startups[1].Id,
			Status:  models.StatusAccepted,
			Message: "We invest in Southeast Asian cleantech and your model fits.",
		},
		{
			Investor: investors[0].Id, Startup: startups[2].Id,
			Status:  models.StatusPending,
			Message: "Interested in your settlement platform.",
		},
	}
	for i := range connections {
		connections[i].CreatedAt = now.Add(time.Duration(i) * time.Minute)
		connections[i].UpdatedAt = connections[i].CreatedAt
		if err := s.Connections.Insert(ctx, &connections[i]); err != nil {
			return err
		}
	}

	proposals := []models.InvestmentProposal{
		{
			Investor: investors[0].Id, Startup: startups[0].Id,
			FundingAmount: 500000, EquityPercentage: 10,
			AdditionalConditions: "Board seat required. Quarterly performance reviews.",
			Status:               models.StatusPending,
		},
		{
			Investor: investors[1].Id, Startup: startups[1].Id,
			FundingAmount: 1000000, EquityPercentage: 20,
			AdditionalConditions: "Quarterly board meetings. Right of first refusal for future funding rounds.",
			Status:               models.StatusAccepted,
		},
	}
	for i := range proposals {
		proposals[i].CreatedAt = now.Add(time.Duration(i) * time.Minute)
		proposals[i].UpdatedAt = proposals[i].CreatedAt
		if err := s.Proposals.Insert(ctx, &proposals[i]); err != nil {
			return err
		}
	}

	posts := []models.Post{
		{
			Author:  startups[0].Id,
			Content: "We just crossed 50 enterprise customers on our support automation platform.",
		},
		{
			Author:  investors[0].Id,
			Content: "Looking to meet pre-seed SaaS founders in Singapore this month.",
		},
	}
	for i := range posts {
		posts[i].CreatedAt = now.Add(time.Duration(i) * time.Minute)
		posts[i].UpdatedAt = posts[i].CreatedAt
		if err := s.Posts.Insert(ctx, &posts[i]); err != nil {
			return err
		}
	}

	return nil
}
