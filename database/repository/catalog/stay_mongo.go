package catalogRepo

import (
	"context"
	"fmt"

	"wanderhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoCatalogRepo) CreateStay(ctx context.Context, s *models.Stay) error {
	if s.RoomIDs == nil {
		s.RoomIDs = []string{}
	}
	if _, err := r.stays.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create stay: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetStay(ctx context.Context, id string) (*models.Stay, error) {
	var s models.Stay
	if err := r.stays.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch stay %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoCatalogRepo) UpdateStay(ctx context.Context, s *models.Stay) error {
	res, err := r.stays.ReplaceOne(ctx, bson.M{"id": s.ID}, s)
	if err != nil {
		return fmt.Errorf("failed to update stay %s: %w", s.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("stay %s not found", s.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) ListStays(ctx context.Context) ([]models.Stay, error) {
	cursor, err := r.stays.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list stays: %w", err)
	}
	defer cursor.Close(ctx)

	var stays []models.Stay
	if err := cursor.All(ctx, &stays); err != nil {
		return nil, fmt.Errorf("failed to decode stays: %w", err)
	}
	return stays, nil
}

func (r *MongoCatalogRepo) FindStays(ctx context.Context, location string, facilities []string) ([]models.Stay, error) {
	filter := bson.M{}
	if location != "" {
		filter["location"] = bson.M{"$regex": location, "$options": "i"}
	}
	if len(facilities) > 0 {
		filter["facilities"] = bson.M{"$all": facilities}
	}

	cursor, err := r.stays.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find stays: %w", err)
	}
	defer cursor.Close(ctx)

	var stays []models.Stay
	if err := cursor.All(ctx, &stays); err != nil {
		return nil, fmt.Errorf("failed to decode stays: %w", err)
	}
	return stays, nil
}

// AddRoom inserts the room and links it onto its stay's room list.
func (r *MongoCatalogRepo) AddRoom(ctx context.Context, room *models.RoomUnit) error {
	if _, err := r.rooms.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	res, err := r.stays.UpdateOne(ctx,
		bson.M{"id": room.StayID},
		bson.M{"$addToSet": bson.M{"room_ids": room.ID}},
	)
	if err != nil {
		return fmt.Errorf("failed to link room to stay %s: %w", room.StayID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("stay %s not found", room.StayID)
	}
	return nil
}

func (r *MongoCatalogRepo) GetRoom(ctx context.Context, id string) (*models.RoomUnit, error) {
	var room models.RoomUnit
	if err := r.rooms.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoCatalogRepo) UpdateRoom(ctx context.Context, room *models.RoomUnit) error {
	res, err := r.rooms.ReplaceOne(ctx, bson.M{"id": room.ID}, room)
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", room.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("room %s not found", room.ID)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteRoom(ctx context.Context, stayID, roomID string) error {
	if _, err := r.rooms.DeleteOne(ctx, bson.M{"id": roomID}); err != nil {
		return fmt.Errorf("failed to delete room %s: %w", roomID, err)
	}
	if _, err := r.stays.UpdateOne(ctx,
		bson.M{"id": stayID},
		bson.M{"$pull": bson.M{"room_ids": roomID}},
	); err != nil {
		return fmt.Errorf("failed to unlink room %s from stay %s: %w", roomID, stayID, err)
	}
	return nil
}

func (r *MongoCatalogRepo) RoomsByStay(ctx context.Context, stayID string, features []string) ([]models.RoomUnit, error) {
	filter := bson.M{"stay_id": stayID}
	if len(features) > 0 {
		filter["features"] = bson.M{"$all": features}
	}

	cursor, err := r.rooms.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms for stay %s: %w", stayID, err)
	}
	defer cursor.Close(ctx)

	var rooms []models.RoomUnit
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}
