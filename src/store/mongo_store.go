package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mesh-apac/mesh-backend/src/models"
)

// NewMongoStore wires every repository against the given database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:         &mongoUsers{coll: db.Collection("users")},
		Connections:   &mongoConnections{coll: db.Collection("connections")},
		Proposals:     &mongoProposals{coll: db.Collection("investment_proposals")},
		Profiles:      &mongoProfiles{coll: db.Collection("startup_profiles")},
		Posts:         &mongoPosts{coll: db.Collection("posts")},
		Notifications: &mongoNotifications{coll: db.Collection("notifications")},
	}
}

func mapMongoErr(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

type mongoUsers struct {
	coll *mongo.Collection
}

func (s *mongoUsers) Insert(ctx context.Context, user *models.User) error {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, user)
	return mapMongoErr(err)
}

func (s *mongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, mapMongoErr(err)
	}
	return &user, nil
}

func (s *mongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, mapMongoErr(err)
	}
	return &user, nil
}

func (s *mongoUsers) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"role": role},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) UpdateProfile(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.User, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	var user models.User
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &user, nil
}

type mongoConnections struct {
	coll *mongo.Collection
}

func (s *mongoConnections) Insert(ctx context.Context, conn *models.Connection) error {
	if conn.Id.IsZero() {
		conn.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, conn)
	return mapMongoErr(err)
}

func (s *mongoConnections) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error) {
	var conn models.Connection
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&conn); err != nil {
		return nil, mapMongoErr(err)
	}
	return &conn, nil
}

func (s *mongoConnections) FindByPair(ctx context.Context, investor, startup primitive.ObjectID, status models.Status) (*models.Connection, error) {
	filter := bson.M{"investor": investor, "startup": startup}
	if status != "" {
		filter["status"] = status
	}
	var conn models.Connection
	if err := s.coll.FindOne(ctx, filter).Decode(&conn); err != nil {
		return nil, mapMongoErr(err)
	}
	return &conn, nil
}

func (s *mongoConnections) FindByStartup(ctx context.Context, startup primitive.ObjectID, status models.Status) ([]models.Connection, error) {
	filter := bson.M{"startup": startup}
	if status != "" {
		filter["status"] = status
	}
	return s.find(ctx, filter)
}

func (s *mongoConnections) FindByInvestor(ctx context.Context, investor primitive.ObjectID, status models.Status) ([]models.Connection, error) {
	filter := bson.M{"investor": investor}
	if status != "" {
		filter["status"] = status
	}
	return s.find(ctx, filter)
}

func (s *mongoConnections) find(ctx context.Context, filter bson.M) ([]models.Connection, error) {
	cursor, err := s.coll.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var connections []models.Connection
	if err := cursor.All(ctx, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

func (s *mongoConnections) Transition(ctx context.Context, id primitive.ObjectID, to models.Status) (*models.Connection, error) {
	// Matching on status=pending makes the check-and-set one write, so a
	// request that lost the race sees ErrNotFound instead of overwriting
	// a terminal status.
	var conn models.Connection
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&conn)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &conn, nil
}

type mongoProposals struct {
	coll *mongo.Collection
}

func (s *mongoProposals) Insert(ctx context.Context, proposal *models.InvestmentProposal) error {
	if proposal.Id.IsZero() {
		proposal.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, proposal)
	return mapMongoErr(err)
}

func (s *mongoProposals) FindByID(ctx context.Context, id primitive.ObjectID) (*models.InvestmentProposal, error) {
	var proposal models.InvestmentProposal
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&proposal); err != nil {
		return nil, mapMongoErr(err)
	}
	return &proposal, nil
}

func (s *mongoProposals) FindByInvestor(ctx context.Context, investor primitive.ObjectID) ([]models.InvestmentProposal, error) {
	return s.find(ctx, bson.M{"investor": investor})
}

func (s *mongoProposals) FindByStartup(ctx context.Context, startup primitive.ObjectID) ([]models.InvestmentProposal, error) {
	return s.find(ctx, bson.M{"startup": startup})
}

func (s *mongoProposals) find(ctx context.Context, filter bson.M) ([]models.InvestmentProposal, error) {
	cursor, err := s.coll.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var proposals []models.InvestmentProposal
	if err := cursor.All(ctx, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

func (s *mongoProposals) Transition(ctx context.Context, id primitive.ObjectID, to models.Status) (*models.InvestmentProposal, error) {
	var proposal models.InvestmentProposal
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&proposal)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &proposal, nil
}

type mongoProfiles struct {
	coll *mongo.Collection
}

func (s *mongoProfiles) Upsert(ctx context.Context, profile *models.StartupProfile) (*models.StartupProfile, error) {
	now := time.Now()
	var updated models.StartupProfile
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"user": profile.User},
		bson.M{
			"$set": bson.M{
				"startupName":   profile.StartupName,
				"location":      profile.Location,
				"industry":      profile.Industry,
				"description":   profile.Description,
				"fundingNeeded": profile.FundingNeeded,
				"updatedAt":     now,
			},
			"$setOnInsert": bson.M{
				"_id":       primitive.NewObjectID(),
				"user":      profile.User,
				"createdAt": now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &updated, nil
}

func (s *mongoProfiles) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.StartupProfile, error) {
	var profile models.StartupProfile
	if err := s.coll.FindOne(ctx, bson.M{"user": user}).Decode(&profile); err != nil {
		return nil, mapMongoErr(err)
	}
	return &profile, nil
}

func (s *mongoProfiles) FindByID(ctx context.Context, id primitive.ObjectID) (*models.StartupProfile, error) {
	var profile models.StartupProfile
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		return nil, mapMongoErr(err)
	}
	return &profile, nil
}

func (s *mongoProfiles) FindAll(ctx context.Context) ([]models.StartupProfile, error) {
	cursor, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.StartupProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

type mongoPosts struct {
	coll *mongo.Collection
}

func (s *mongoPosts) Insert(ctx context.Context, post *models.Post) error {
	if post.Id.IsZero() {
		post.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, post)
	return mapMongoErr(err)
}

func (s *mongoPosts) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, mapMongoErr(err)
	}
	return &post, nil
}

func (s *mongoPosts) FindByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	cursor, err := s.coll.Find(ctx,
		bson.M{"author": bson.M{"$in": authors}},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *mongoPosts) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoNotifications struct {
	coll *mongo.Collection
}

func (s *mongoNotifications) Insert(ctx context.Context, notification *models.Notification) error {
	if notification.Id.IsZero() {
		notification.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, notification)
	return mapMongoErr(err)
}

func (s *mongoNotifications) FindByRecipient(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"recipient": recipient},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *mongoNotifications) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (*models.Notification, error) {
	var notification models.Notification
	err := s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "recipient": recipient},
		bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&notification)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &notification, nil
}
