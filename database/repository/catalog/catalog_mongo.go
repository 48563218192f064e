package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"wanderhub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB, one collection
// per unit family.
type MongoCatalogRepo struct {
	taxis     *mongo.Collection
	stays     *mongo.Collection
	rooms     *mongo.Collection
	guides    *mongo.Collection
	companies *mongo.Collection
	vehicles  *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		taxis:     db.Collection("taxis"),
		stays:     db.Collection("stays"),
		rooms:     db.Collection("rooms"),
		guides:    db.Collection("guides"),
		companies: db.Collection("rental_companies"),
		vehicles:  db.Collection("vehicles"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	specs := []struct {
		coll   *mongo.Collection
		models []mongo.IndexModel
	}{
		{r.taxis, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "city", Value: 1}, {Key: "vehicle_type", Value: 1}}},
		}},
		{r.stays, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "location", Value: 1}}},
		}},
		{r.rooms, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "stay_id", Value: 1}}},
		}},
		{r.guides, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "city", Value: 1}}},
		}},
		{r.companies, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		}},
		{r.vehicles, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "area", Value: 1}, {Key: "vehicle_type", Value: 1}}},
		}},
	}

	for _, spec := range specs {
		if _, err := spec.coll.Indexes().CreateMany(ctx, spec.models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", spec.coll.Name(), err)
		}
	}
	return nil
}

// priceFilter builds a bson range filter for an optional price band.
func priceFilter(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	band := bson.M{}
	if min != nil {
		band["$gte"] = *min
	}
	if max != nil {
		band["$lte"] = *max
	}
	return band
}

// notIn builds an exclusion filter, or nil when there is nothing to exclude.
func notIn(ids []string) bson.M {
	if len(ids) == 0 {
		return nil
	}
	return bson.M{"$nin": ids}
}
