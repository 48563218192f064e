package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// conflictFilter builds the Mongo filter matching active bookings whose
// temporal key overlaps the given one. unitID may be empty to match the whole
// vertical (availability queries) or set to scope the check to one unit.
func conflictFilter(vertical models.Vertical, unitID string, key models.TemporalKey) bson.M {
	filter := bson.M{
		"vertical": vertical,
		"active":   true,
	}
	if unitID != "" {
		filter["unit_id"] = unitID
	}
	switch k := key.(type) {
	case models.DateKey:
		filter["date"] = k.Date
	case models.SlotKey:
		filter["date"] = k.Date
		filter["slot"] = k.Slot
	case models.RangeKey:
		// Half-open [start, end): ISO date strings compare lexically.
		filter["start_date"] = bson.M{"$lt": k.End}
		filter["end_date"] = bson.M{"$gt": k.Start}
	}
	return filter
}

func (r *MongoBookingRepo) ConflictingUnitIDs(ctx context.Context, vertical models.Vertical, key models.TemporalKey) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"unit_id": 1})
	cursor, err := r.coll.Find(ctx, conflictFilter(vertical, "", key), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			UnitID string `bson:"unit_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		ids = append(ids, doc.UnitID)
	}
	return ids, cursor.Err()
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, cancelledAt *time.Time) (*models.Booking, error) {
	set := bson.M{
		"status": to,
		"active": !to.IsTerminal(),
	}
	if cancelledAt != nil {
		set["cancelled_at"] = *cancelledAt
	}
	update := bson.M{"$set": set}
	if to.IsTerminal() {
		// Release the uniqueness guard so the slot becomes bookable again.
		update["$unset"] = bson.M{"slot_uniq": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id, "status": from}, update, opts).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrStale
		}
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string, vertical models.Vertical) ([]models.Booking, error) {
	filter := bson.M{"user_id": userID}
	if vertical != "" {
		filter["vertical"] = vertical
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByService(ctx context.Context, serviceID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"service_id": serviceID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) HasActiveForUnit(ctx context.Context, unitID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"unit_id": unitID, "active": true}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to count active bookings for unit %s: %w", unitID, err)
	}
	return count > 0, nil
}
