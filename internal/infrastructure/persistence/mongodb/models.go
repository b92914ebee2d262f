package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/domain/valueobjects"
)

// userDocument é o documento BSON da coleção users
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"created_at"`
}

// operatorDocument é o documento BSON da coleção authenticated_users
type operatorDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name"`
	ProfilePic   *string            `bson:"profile_pic,omitempty"`
	AccessToken  *string            `bson:"access_token,omitempty"`
	RefreshToken *string            `bson:"refresh_token,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (doc *userDocument) toEntity() (*entities.User, error) {
	email, err := valueobjects.NewEmail(doc.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     email,
		Role:      doc.Role,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (doc *operatorDocument) toEntity() (*entities.Operator, error) {
	email, err := valueobjects.NewEmail(doc.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Operator{
		Email:        email,
		Name:         doc.Name,
		ProfilePic:   doc.ProfilePic,
		AccessToken:  doc.AccessToken,
		RefreshToken: doc.RefreshToken,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}
