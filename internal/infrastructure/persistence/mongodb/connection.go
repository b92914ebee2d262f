package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafabene/sheetsync-backend/internal/domain/ports"
	"github.com/rafabene/sheetsync-backend/internal/infrastructure/config"
)

const (
	usersCollection     = "users"
	operatorsCollection = "authenticated_users"
)

// Database encapsula o cliente MongoDB com ciclo de vida explícito
// (construído no main, encerrado no shutdown; sem estado global)
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDatabase conecta ao MongoDB e garante os índices únicos de email
// nas coleções users e authenticated_users
func NewDatabase(ctx context.Context, cfg *config.MongoConfig, log ports.Logger) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping para verificar conexão
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(cfg.Database)

	d := &Database{client: client, db: db}
	if err := d.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Info("mongodb connected successfully",
		"database", cfg.Database,
	)

	return d, nil
}

// ensureIndexes cria os índices únicos de email exigidos pelo modelo
// (a unicidade de email é garantida pelo banco, não pela aplicação)
func (d *Database) ensureIndexes(ctx context.Context) error {
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := d.db.Collection(usersCollection).Indexes().CreateOne(ctx, emailIndex); err != nil {
		return err
	}

	if _, err := d.db.Collection(operatorsCollection).Indexes().CreateOne(ctx, emailIndex); err != nil {
		return err
	}

	return nil
}

// Users retorna a coleção de usuários do diretório
func (d *Database) Users() *mongo.Collection {
	return d.db.Collection(usersCollection)
}

// Operators retorna a coleção de operadores autenticados
func (d *Database) Operators() *mongo.Collection {
	return d.db.Collection(operatorsCollection)
}

// Close encerra a conexão com o MongoDB
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
