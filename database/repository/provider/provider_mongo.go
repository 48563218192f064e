package providerRepo

import (
	"context"
	"fmt"
	"time"

	"wanderhub/database"
	"wanderhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.DB().Collection("providers")
	repo := &MongoProviderRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create provider indexes: %v\n", err)
	}
	return repo
}

func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "token_hash", Value: 1}}},
		{Keys: bson.D{{Key: "service.id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) Create(ctx context.Context, p *models.ServiceProvider) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.ServiceProvider, error) {
	var p models.ServiceProvider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoProviderRepo) GetByEmail(ctx context.Context, email string) (*models.ServiceProvider, error) {
	var p models.ServiceProvider
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider by email: %w", err)
	}
	return &p, nil
}

func (r *MongoProviderRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.ServiceProvider, error) {
	var p models.ServiceProvider
	if err := r.coll.FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider by token hash: %w", err)
	}
	return &p, nil
}

func (r *MongoProviderRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"token_hash": tokenHash}})
	if err != nil {
		return fmt.Errorf("failed to set token hash for provider %s: %w", id, err)
	}
	return nil
}

// ClaimService sets the service link only if none exists yet. MatchedCount==0
// means the provider is unknown or already linked; the caller distinguishes by
// re-reading.
func (r *MongoProviderRepo) ClaimService(ctx context.Context, providerID string, ref models.ServiceRef) error {
	filter := bson.M{
		"id":      providerID,
		"service": bson.M{"$exists": false},
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"service": ref}})
	if err != nil {
		return fmt.Errorf("failed to claim service for provider %s: %w", providerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrServiceAlreadyRegistered
	}
	return nil
}
