package catalogRepo

import (
	"context"
	"fmt"

	"wanderhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoCatalogRepo) CreateTaxi(ctx context.Context, t *models.TaxiUnit) error {
	if _, err := r.taxis.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create taxi: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetTaxi(ctx context.Context, id string) (*models.TaxiUnit, error) {
	var t models.TaxiUnit
	if err := r.taxis.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch taxi %s: %w", id, err)
	}
	return &t, nil
}

func (r *MongoCatalogRepo) UpdateTaxi(ctx context.Context, t *models.TaxiUnit) error {
	res, err := r.taxis.ReplaceOne(ctx, bson.M{"id": t.ID}, t)
	if err != nil {
		return fmt.Errorf("failed to update taxi %s: %w", t.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("taxi %s not found", t.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) ListTaxis(ctx context.Context) ([]models.TaxiUnit, error) {
	cursor, err := r.taxis.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list taxis: %w", err)
	}
	defer cursor.Close(ctx)

	var taxis []models.TaxiUnit
	if err := cursor.All(ctx, &taxis); err != nil {
		return nil, fmt.Errorf("failed to decode taxis: %w", err)
	}
	return taxis, nil
}

func (r *MongoCatalogRepo) FindTaxis(ctx context.Context, search models.TaxiSearch, excludeIDs []string) ([]models.TaxiUnit, error) {
	filter := bson.M{
		"vehicle_type": search.VehicleType,
		"city":         search.Pickup,
	}
	if ex := notIn(excludeIDs); ex != nil {
		filter["id"] = ex
	}
	if band := priceFilter(search.MinPrice, search.MaxPrice); band != nil {
		filter["per_km"] = band
	}

	cursor, err := r.taxis.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find taxis: %w", err)
	}
	defer cursor.Close(ctx)

	var taxis []models.TaxiUnit
	if err := cursor.All(ctx, &taxis); err != nil {
		return nil, fmt.Errorf("failed to decode taxis: %w", err)
	}
	return taxis, nil
}
