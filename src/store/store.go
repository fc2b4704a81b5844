package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/models"
)

var (
	// ErrNotFound means the referenced document does not exist, or a
	// conditional update matched nothing.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate means an insert collided with a uniqueness constraint.
	ErrDuplicate = errors.New("store: duplicate")
)

// UserStore holds identity records. Leaf dependency for everything else.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error)
}

// ConnectionStore governs investor->startup connection requests.
type ConnectionStore interface {
	Insert(ctx context.Context, conn *models.Connection) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error)
	// FindByPair matches any status; pass a status to narrow.
	FindByPair(ctx context.Context, investor, startup primitive.ObjectID, status models.Status) (*models.Connection, error)
	FindByStartup(ctx context.Context, startup primitive.ObjectID, status models.Status) ([]models.Connection, error)
	FindByInvestor(ctx context.Context, investor primitive.ObjectID, status models.Status) ([]models.Connection, error)
	// Transition moves a pending connection to a terminal status. The
	// status check happens inside the same conditional write, so a racing
	// second transition loses with ErrNotFound.
	Transition(ctx context.Context, id primitive.ObjectID, to models.Status) (*models.Connection, error)
}

// ProposalStore governs investment proposals. Unlike connections there is
// no uniqueness on the (investor, startup) pair.
type ProposalStore interface {
	Insert(ctx context.Context, proposal *models.InvestmentProposal) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.InvestmentProposal, error)
	FindByInvestor(ctx context.Context, investor primitive.ObjectID) ([]models.InvestmentProposal, error)
	FindByStartup(ctx context.Context, startup primitive.ObjectID) ([]models.InvestmentProposal, error)
	Transition(ctx context.Context, id primitive.ObjectID, to models.Status) (*models.InvestmentProposal, error)
}

type ProfileStore interface {
	Upsert(ctx context.Context, profile *models.StartupProfile) (*models.StartupProfile, error)
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.StartupProfile, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.StartupProfile, error)
	FindAll(ctx context.Context) ([]models.StartupProfile, error)
}

type PostStore interface {
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	FindByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type NotificationStore interface {
	Insert(ctx context.Context, notification *models.Notification) error
	FindByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error)
}

// Store bundles the per-entity repositories. Controllers reach it through
// the package-level Current, set once at startup (or per test).
type Store struct {
	Users         UserStore
	Connections   ConnectionStore
	Proposals     ProposalStore
	Profiles      ProfileStore
	Posts         PostStore
	Notifications NotificationStore
}

var Current *Store

// Use installs the active store.
func Use(s *Store) {
	Current = s
}
