package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafabene/sheetsync-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sheetsync-backend/internal/domain/errors"
	"github.com/rafabene/sheetsync-backend/internal/domain/repositories"
)

// UserRepository implementa repositories.UserRepository sobre MongoDB
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *Database) repositories.UserRepository {
	return &UserRepository{collection: db.Users()}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	doc := userDocument{
		Name:      user.Name,
		Email:     user.Email.String(),
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		// O índice único de email é a garantia real contra duplicatas
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID).Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidUserID
	}

	var doc userDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return doc.toEntity()
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc userDocument
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return doc.toEntity()
}

func (r *UserRepository) Update(ctx context.Context, id string, patch repositories.UserPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domainerrors.ErrInvalidUserID
	}

	// $set apenas dos campos presentes; created_at nunca é tocado
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}

	if len(set) == 0 {
		return domainerrors.ErrEmptyUpdate
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	if result.MatchedCount == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domainerrors.ErrInvalidUserID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	skip := int64(page-1) * int64(pageSize)

	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	users, err := r.decodeAll(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return r.decodeAll(ctx, cursor)
}

func (r *UserRepository) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*entities.User, error) {
	var users []*entities.User
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		user, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, cursor.Err()
}
