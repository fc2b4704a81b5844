package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/models"
)

func TestMemoryUsersDuplicateEmail(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	first := models.User{Email: "a@b.com", Role: models.RoleInvestor}
	require.NoError(t, s.Users.Insert(ctx, &first))

	second := models.User{Email: "a@b.com", Role: models.RoleStartup}
	assert.Equal(t, ErrDuplicate, s.Users.Insert(ctx, &second))
}

func TestMemoryConnectionsPairUniqueness(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	investor := primitive.NewObjectID()
	startup := primitive.NewObjectID()

	first := models.Connection{Investor: investor, Startup: startup, Status: models.StatusDeclined}
	require.NoError(t, s.Connections.Insert(ctx, &first))

	// Uniqueness holds regardless of the existing record's status.
	second := models.Connection{Investor: investor, Startup: startup, Status: models.StatusPending}
	assert.Equal(t, ErrDuplicate, s.Connections.Insert(ctx, &second))

	// A different pair is fine.
	third := models.Connection{Investor: investor, Startup: primitive.NewObjectID(), Status: models.StatusPending}
	assert.NoError(t, s.Connections.Insert(ctx, &third))
}

func TestMemoryConnectionsTransitionGuard(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	conn := models.Connection{
		Investor: primitive.NewObjectID(),
		Startup:  primitive.NewObjectID(),
		Status:   models.StatusPending,
	}
	require.NoError(t, s.Connections.Insert(ctx, &conn))

	updated, err := s.Connections.Transition(ctx, conn.Id, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	assert.False(t, updated.UpdatedAt.IsZero())

	// Terminal states are absorbing, whichever direction is attempted.
	_, err = s.Connections.Transition(ctx, conn.Id, models.StatusDeclined)
	assert.Equal(t, ErrNotFound, err)
	_, err = s.Connections.Transition(ctx, conn.Id, models.StatusAccepted)
	assert.Equal(t, ErrNotFound, err)

	_, err = s.Connections.Transition(ctx, primitive.NewObjectID(), models.StatusAccepted)
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryConnectionsFindByPairStatusFilter(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	investor := primitive.NewObjectID()
	startup := primitive.NewObjectID()
	conn := models.Connection{Investor: investor, Startup: startup, Status: models.StatusPending}
	require.NoError(t, s.Connections.Insert(ctx, &conn))

	_, err := s.Connections.FindByPair(ctx, investor, startup, models.StatusAccepted)
	assert.Equal(t, ErrNotFound, err)

	found, err := s.Connections.FindByPair(ctx, investor, startup, "")
	require.NoError(t, err)
	assert.Equal(t, conn.Id, found.Id)

	_, err = s.Connections.Transition(ctx, conn.Id, models.StatusAccepted)
	require.NoError(t, err)

	found, err = s.Connections.FindByPair(ctx, investor, startup, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, found.Status)
}

func TestMemoryProposalsSortedNewestFirst(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	investor := primitive.NewObjectID()
	startup := primitive.NewObjectID()
	base := time.Now()

	older := models.InvestmentProposal{
		Investor: investor, Startup: startup,
		FundingAmount: 100000, EquityPercentage: 5,
		Status: models.StatusPending, CreatedAt: base.Add(-time.Hour),
	}
	newer := models.InvestmentProposal{
		Investor: investor, Startup: startup,
		FundingAmount: 200000, EquityPercentage: 10,
		Status: models.StatusPending, CreatedAt: base,
	}
	require.NoError(t, s.Proposals.Insert(ctx, &older))
	require.NoError(t, s.Proposals.Insert(ctx, &newer))

	sent, err := s.Proposals.FindByInvestor(ctx, investor)
	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.Equal(t, newer.Id, sent[0].Id)
	assert.Equal(t, older.Id, sent[1].Id)

	received, err := s.Proposals.FindByStartup(ctx, startup)
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, newer.Id, received[0].Id)
}

func TestMemoryProposalsAllowMultiplePerPair(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	investor := primitive.NewObjectID()
	startup := primitive.NewObjectID()

	for i := 0; i < 3; i++ {
		p := models.InvestmentProposal{
			Investor: investor, Startup: startup,
			FundingAmount: 100000, EquityPercentage: 5,
			Status: models.StatusPending,
		}
		require.NoError(t, s.Proposals.Insert(ctx, &p))
	}

	sent, err := s.Proposals.FindByInvestor(ctx, investor)
	require.NoError(t, err)
	assert.Len(t, sent, 3)
}

func TestMemoryProposalsTransitionGuard(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	proposal := models.InvestmentProposal{
		Investor: primitive.NewObjectID(), Startup: primitive.NewObjectID(),
		FundingAmount: 500000, EquityPercentage: 10,
		Status: models.StatusPending,
	}
	require.NoError(t, s.Proposals.Insert(ctx, &proposal))

	updated, err := s.Proposals.Transition(ctx, proposal.Id, models.StatusDeclined)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, updated.Status)

	_, err = s.Proposals.Transition(ctx, proposal.Id, models.StatusAccepted)
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryProfilesUpsert(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	user := primitive.NewObjectID()
	created, err := s.Profiles.Upsert(ctx, &models.StartupProfile{
		User: user, StartupName: "Acme", Location: "Singapore",
		Industry: "Fintech", Description: "Payments", FundingNeeded: 100000,
	})
	require.NoError(t, err)
	assert.False(t, created.Id.IsZero())

	updated, err := s.Profiles.Upsert(ctx, &models.StartupProfile{
		User: user, StartupName: "Acme Pte Ltd", Location: "Singapore",
		Industry: "Fintech", Description: "Payments", FundingNeeded: 250000,
	})
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "Acme Pte Ltd", updated.StartupName)
	assert.Equal(t, float64(250000), updated.FundingNeeded)

	all, err := s.Profiles.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryNotificationsMarkRead(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	recipient := primitive.NewObjectID()
	notification := models.Notification{
		Recipient: recipient,
		Type:      models.NotificationConnectionAccepted,
	}
	require.NoError(t, s.Notifications.Insert(ctx, &notification))

	// Only the recipient may mark it read.
	_, err := s.Notifications.MarkRead(ctx, notification.Id, primitive.NewObjectID())
	assert.Equal(t, ErrNotFound, err)

	read, err := s.Notifications.MarkRead(ctx, notification.Id, recipient)
	require.NoError(t, err)
	assert.True(t, read.Read)
}

func TestSeedDemoData(t *testing.T) {
	s, _ := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, SeedDemoData(ctx, s))

	startups, err := s.Users.FindByRole(ctx, models.RoleStartup)
	require.NoError(t, err)
	assert.Len(t, startups, 3)

	investors, err := s.Users.FindByRole(ctx, models.RoleInvestor)
	require.NoError(t, err)
	assert.Len(t, investors, 2)

	// The accepted pairs in the fixture satisfy the proposal precondition.
	for _, investor := range investors {
		connections, err := s.Connections.FindByInvestor(ctx, investor.Id, "")
		require.NoError(t, err)
		assert.NotEmpty(t, connections)
	}

	profiles, err := s.Profiles.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 3)
}
