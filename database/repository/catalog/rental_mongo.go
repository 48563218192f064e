package catalogRepo

import (
	"context"
	"fmt"

	"wanderhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoCatalogRepo) CreateRentalCompany(ctx context.Context, c *models.RentalCompany) error {
	if c.VehicleIDs == nil {
		c.VehicleIDs = []string{}
	}
	if _, err := r.companies.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create rental company: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetRentalCompany(ctx context.Context, id string) (*models.RentalCompany, error) {
	var c models.RentalCompany
	if err := r.companies.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rental company %s: %w", id, err)
	}
	return &c, nil
}

func (r *MongoCatalogRepo) UpdateRentalCompany(ctx context.Context, c *models.RentalCompany) error {
	res, err := r.companies.ReplaceOne(ctx, bson.M{"id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("failed to update rental company %s: %w", c.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("rental company %s not found", c.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) ListRentalCompanies(ctx context.Context) ([]models.RentalCompany, error) {
	cursor, err := r.companies.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list rental companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []models.RentalCompany
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode rental companies: %w", err)
	}
	return companies, nil
}

// AddVehicle inserts the vehicle and links it onto its company's fleet.
func (r *MongoCatalogRepo) AddVehicle(ctx context.Context, v *models.RentalVehicleUnit) error {
	if _, err := r.vehicles.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	res, err := r.companies.UpdateOne(ctx,
		bson.M{"id": v.CompanyID},
		bson.M{"$addToSet": bson.M{"vehicle_ids": v.ID}},
	)
	if err != nil {
		return fmt.Errorf("failed to link vehicle to company %s: %w", v.CompanyID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("rental company %s not found", v.CompanyID)
	}
	return nil
}

func (r *MongoCatalogRepo) GetVehicle(ctx context.Context, id string) (*models.RentalVehicleUnit, error) {
	var v models.RentalVehicleUnit
	if err := r.vehicles.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle %s: %w", id, err)
	}
	return &v, nil
}

func (r *MongoCatalogRepo) UpdateVehicle(ctx context.Context, v *models.RentalVehicleUnit) error {
	res, err := r.vehicles.ReplaceOne(ctx, bson.M{"id": v.ID}, v)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", v.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s not found", v.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteVehicle(ctx context.Context, companyID, vehicleID string) error {
	if _, err := r.vehicles.DeleteOne(ctx, bson.M{"id": vehicleID}); err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	if _, err := r.companies.UpdateOne(ctx,
		bson.M{"id": companyID},
		bson.M{"$pull": bson.M{"vehicle_ids": vehicleID}},
	); err != nil {
		return fmt.Errorf("failed to unlink vehicle %s from company %s: %w", vehicleID, companyID, err)
	}
	return nil
}

func (r *MongoCatalogRepo) FindVehicles(ctx context.Context, search models.RentalSearch, excludeIDs []string) ([]models.RentalVehicleUnit, error) {
	filter := bson.M{
		"vehicle_type": search.VehicleType,
		"area":         search.Area,
	}
	if ex := notIn(excludeIDs); ex != nil {
		filter["id"] = ex
	}
	if band := priceFilter(search.MinPrice, search.MaxPrice); band != nil {
		filter["per_day"] = band
	}

	cursor, err := r.vehicles.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.RentalVehicleUnit
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *MongoCatalogRepo) GetCompanyByVehicle(ctx context.Context, vehicleID string) (*models.RentalCompany, error) {
	var c models.RentalCompany
	if err := r.companies.FindOne(ctx, bson.M{"vehicle_ids": vehicleID}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch company for vehicle %s: %w", vehicleID, err)
	}
	return &c, nil
}
