package catalogRepo

import (
	"context"
	"fmt"

	"wanderhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoCatalogRepo) CreateGuide(ctx context.Context, g *models.GuideUnit) error {
	if _, err := r.guides.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("failed to create guide: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetGuide(ctx context.Context, id string) (*models.GuideUnit, error) {
	var g models.GuideUnit
	if err := r.guides.FindOne(ctx, bson.M{"id": id}).Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch guide %s: %w", id, err)
	}
	return &g, nil
}

func (r *MongoCatalogRepo) UpdateGuide(ctx context.Context, g *models.GuideUnit) error {
	res, err := r.guides.ReplaceOne(ctx, bson.M{"id": g.ID}, g)
	if err != nil {
		return fmt.Errorf("failed to update guide %s: %w", g.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("guide %s not found", g.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) ListGuides(ctx context.Context) ([]models.GuideUnit, error) {
	cursor, err := r.guides.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	defer cursor.Close(ctx)

	var guides []models.GuideUnit
	if err := cursor.All(ctx, &guides); err != nil {
		return nil, fmt.Errorf("failed to decode guides: %w", err)
	}
	return guides, nil
}

func (r *MongoCatalogRepo) FindGuides(ctx context.Context, search models.GuideSearch, excludeIDs []string) ([]models.GuideUnit, error) {
	filter := bson.M{"city": search.City}
	if ex := notIn(excludeIDs); ex != nil {
		filter["id"] = ex
	}
	if band := priceFilter(search.MinPrice, search.MaxPrice); band != nil {
		filter["price"] = band
	}
	if search.SpecializeArea != "" {
		filter["specialize_area"] = search.SpecializeArea
	}
	if len(search.Languages) > 0 {
		filter["languages"] = bson.M{"$all": search.Languages}
	}

	cursor, err := r.guides.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find guides: %w", err)
	}
	defer cursor.Close(ctx)

	var guides []models.GuideUnit
	if err := cursor.All(ctx, &guides); err != nil {
		return nil, fmt.Errorf("failed to decode guides: %w", err)
	}
	return guides, nil
}
