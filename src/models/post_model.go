package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Author    primitive.ObjectID `json:"author" bson:"author"`
	Content   string             `json:"content" bson:"content"`
	Image     string             `json:"image" bson:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PostAuthor is the compact author shape embedded in feed responses.
// It is role-neutral: both startups and investors publish updates.
type PostAuthor struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Avatar   string             `json:"avatar"`
	Role     Role               `json:"role"`
	Location string             `json:"location"`
}

type PostDto struct {
	ID        primitive.ObjectID `json:"id"`
	Author    PostAuthor         `json:"author"`
	Content   string             `json:"content"`
	Image     string             `json:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (u *User) PostAuthor() PostAuthor {
	return PostAuthor{
		ID:       u.Id,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Role:     u.Role,
		Location: u.Location,
	}
}
