package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/models"
)

// MemoryStore keeps every collection in mutex-guarded maps. It backs the
// demo/fixture mode and the test suite, with the same semantics as the
// mongo implementation, including the pair uniqueness and the
// pending-only transition guard.
type MemoryStore struct {
	mu            sync.RWMutex
	users         map[primitive.ObjectID]models.User
	connections   map[primitive.ObjectID]models.Connection
	proposals     map[primitive.ObjectID]models.InvestmentProposal
	profiles      map[primitive.ObjectID]models.StartupProfile
	posts         map[primitive.ObjectID]models.Post
	notifications map[primitive.ObjectID]models.Notification
}

// NewMemoryStore wires every repository against a fresh in-memory state.
func NewMemoryStore() (*Store, *MemoryStore) {
	m := &MemoryStore{
		users:         make(map[primitive.ObjectID]models.User),
		connections:   make(map[primitive.ObjectID]models.Connection),
		proposals:     make(map[primitive.ObjectID]models.InvestmentProposal),
		profiles:      make(map[primitive.ObjectID]models.StartupProfile),
		posts:         make(map[primitive.ObjectID]models.Post),
		notifications: make(map[primitive.ObjectID]models.Notification),
	}
	return &Store{
		Users:         (*memUsers)(m),
		Connections:   (*memConnections)(m),
		Proposals:     (*memProposals)(m),
		Profiles:      (*memProfiles)(m),
		Posts:         (*memPosts)(m),
		Notifications: (*memNotifications)(m),
	}, m
}

type memUsers MemoryStore

func (s *memUsers) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicate
		}
	}
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	s.users[user.Id] = *user
	return nil
}

func (s *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUsers) FindByRole(_ context.Context, role models.Role) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var users []models.User
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (s *memUsers) UpdateProfile(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "firstName":
			user.FirstName, _ = v.(string)
		case "lastName":
			user.LastName, _ = v.(string)
		case "name":
			user.Name, _ = v.(string)
		case "avatar":
			user.Avatar, _ = v.(string)
		case "location":
			user.Location, _ = v.(string)
		case "bio":
			user.Bio, _ = v.(string)
		case "focus":
			user.Focus, _ = v.(string)
		case "investmentRange":
			user.InvestmentRange, _ = v.(string)
		case "industry":
			user.Industry, _ = v.(string)
		case "description":
			user.Description, _ = v.(string)
		case "fundingNeeded":
			user.FundingNeeded, _ = v.(float64)
		}
	}
	s.users[id] = user
	return &user, nil
}

type memConnections MemoryStore

func (s *memConnections) Insert(_ context.Context, conn *models.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Same constraint as the unique compound index on (investor, startup).
	for _, existing := range s.connections {
		if existing.Investor == conn.Investor && existing.Startup == conn.Startup {
			return ErrDuplicate
		}
	}
	if conn.Id.IsZero() {
		conn.Id = primitive.NewObjectID()
	}
	s.connections[conn.Id] = *conn
	return nil
}

func (s *memConnections) FindByID(_ context.Context, id primitive.ObjectID) (*models.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conn, ok := s.connections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &conn, nil
}

func (s *memConnections) FindByPair(_ context.Context, investor, startup primitive.ObjectID, status models.Status) (*models.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, conn := range s.connections {
		if conn.Investor == investor && conn.Startup == startup &&
			(status == "" || conn.Status == status) {
			c := conn
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memConnections) FindByStartup(_ context.Context, startup primitive.ObjectID, status models.Status) ([]models.Connection, error) {
	return (*MemoryStore)(s).findConnections(func(c models.Connection) bool {
		return c.Startup == startup && (status == "" || c.Status == status)
	})
}

func (s *memConnections) FindByInvestor(_ context.Context, investor primitive.ObjectID, status models.Status) ([]models.Connection, error) {
	return (*MemoryStore)(s).findConnections(func(c models.Connection) bool {
		return c.Investor == investor && (status == "" || c.Status == status)
	})
}

func (m *MemoryStore) findConnections(match func(models.Connection) bool) ([]models.Connection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var connections []models.Connection
	for _, conn := range m.connections {
		if match(conn) {
			connections = append(connections, conn)
		}
	}
	sort.Slice(connections, func(i, j int) bool {
		return connections[i].CreatedAt.After(connections[j].CreatedAt)
	})
	return connections, nil
}

func (s *memConnections) Transition(_ context.Context, id primitive.ObjectID, to models.Status) (*models.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn, ok := s.connections[id]
	if !ok || conn.Status != models.StatusPending {
		return nil, ErrNotFound
	}
	conn.Status = to
	conn.UpdatedAt = time.Now()
	s.connections[id] = conn
	return &conn, nil
}

type memProposals MemoryStore

func (s *memProposals) Insert(_ context.Context, proposal *models.InvestmentProposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if proposal.Id.IsZero() {
		proposal.Id = primitive.NewObjectID()
	}
	s.proposals[proposal.Id] = *proposal
	return nil
}

func (s *memProposals) FindByID(_ context.Context, id primitive.ObjectID) (*models.InvestmentProposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	proposal, ok := s.proposals[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &proposal, nil
}

func (s *memProposals) FindByInvestor(_ context.Context, investor primitive.ObjectID) ([]models.InvestmentProposal, error) {
	return (*MemoryStore)(s).findProposals(func(p models.InvestmentProposal) bool {
		return p.Investor == investor
	})
}

func (s *memProposals) FindByStartup(_ context.Context, startup primitive.ObjectID) ([]models.InvestmentProposal, error) {
	return (*MemoryStore)(s).findProposals(func(p models.InvestmentProposal) bool {
		return p.Startup == startup
	})
}

func (m *MemoryStore) findProposals(match func(models.InvestmentProposal) bool) ([]models.InvestmentProposal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var proposals []models.InvestmentProposal
	for _, proposal := range m.proposals {
		if match(proposal) {
			proposals = append(proposals, proposal)
		}
	}
	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}

func (s *memProposals) Transition(_ context.Context, id primitive.ObjectID, to models.Status) (*models.InvestmentProposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	proposal, ok := s.proposals[id]
	if !ok || proposal.Status != models.StatusPending {
		return nil, ErrNotFound
	}
	proposal.Status = to
	proposal.UpdatedAt = time.Now()
	s.proposals[id] = proposal
	return &proposal, nil
}

type memProfiles MemoryStore

func (s *memProfiles) Upsert(_ context.Context, profile *models.StartupProfile) (*models.StartupProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, existing := range s.profiles {
		if existing.User == profile.User {
			existing.StartupName = profile.StartupName
			existing.Location = profile.Location
			existing.Industry = profile.Industry
			existing.Description = profile.Description
			existing.FundingNeeded = profile.FundingNeeded
			existing.UpdatedAt = now
			s.profiles[id] = existing
			return &existing, nil
		}
	}
	created := *profile
	created.Id = primitive.NewObjectID()
	created.CreatedAt = now
	created.UpdatedAt = now
	s.profiles[created.Id] = created
	return &created, nil
}

func (s *memProfiles) FindByUser(_ context.Context, user primitive.ObjectID) (*models.StartupProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, profile := range s.profiles {
		if profile.User == user {
			p := profile
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memProfiles) FindByID(_ context.Context, id primitive.ObjectID) (*models.StartupProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (s *memProfiles) FindAll(_ context.Context) ([]models.StartupProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var profiles []models.StartupProfile
	for _, profile := range s.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
	})
	return profiles, nil
}

type memPosts MemoryStore

func (s *memPosts) Insert(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.Id.IsZero() {
		post.Id = primitive.NewObjectID()
	}
	s.posts[post.Id] = *post
	return nil
}

func (s *memPosts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (s *memPosts) FindByAuthors(_ context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	authorSet := make(map[primitive.ObjectID]bool, len(authors))
	for _, id := range authors {
		authorSet[id] = true
	}
	var posts []models.Post
	for _, post := range s.posts {
		if authorSet[post.Author] {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *memPosts) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

type memNotifications MemoryStore

func (s *memNotifications) Insert(_ context.Context, notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if notification.Id.IsZero() {
		notification.Id = primitive.NewObjectID()
	}
	s.notifications[notification.Id] = *notification
	return nil
}

func (s *memNotifications) FindByRecipient(_ context.Context, recipient primitive.ObjectID) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var notifications []models.Notification
	for _, notification := range s.notifications {
		if notification.Recipient == recipient {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (s *memNotifications) MarkRead(_ context.Context, id, recipient primitive.ObjectID) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification, ok := s.notifications[id]
	if !ok || notification.Recipient != recipient {
		return nil, ErrNotFound
	}
	notification.Read = true
	notification.UpdatedAt = time.Now()
	s.notifications[id] = notification
	return &notification, nil
}
