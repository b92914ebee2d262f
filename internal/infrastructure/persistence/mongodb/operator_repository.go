package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	"github.com/rafabene/sheetsync-backend/internal/domain/repositories"
)

// OperatorRepository implementa repositories.OperatorRepository sobre MongoDB
type OperatorRepository struct {
	collection *mongo.Collection
}

// NewOperatorRepository cria um novo OperatorRepository
func NewOperatorRepository(db *Database) repositories.OperatorRepository {
	return &OperatorRepository{collection: db.Operators()}
}

func (r *OperatorRepository) Upsert(ctx context.Context, operator *entities.Operator) error {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"email":         operator.Email.String(),
			"name":          operator.Name,
			"profile_pic":   operator.ProfilePic,
			"access_token":  operator.AccessToken,
			"refresh_token": operator.RefreshToken,
			"updated_at":    now,
		},
		// created_at só é definido na primeira inserção
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": operator.Email.String()},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*entities.Operator, error) {
	var doc operatorDocument
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return doc.toEntity()
}
