package bookingRepo

import (
	"context"
	"fmt"

	"wanderhub/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIfFree re-checks the overlap condition and inserts the booking inside
// one Mongo transaction, so two concurrent attempts for the same unit and an
// overlapping temporal key cannot both commit. Equality-keyed verticals are
// additionally guarded by the partial unique index on slot_uniq, which turns a
// lost race into a duplicate-key error even outside a transaction.
func (r *MongoBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error {
	b.Normalize()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := conflictFilter(b.Vertical, b.UnitID, b.TemporalKey())
		count, err := r.coll.CountDocuments(sc, filter, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		if count > 0 {
			return ErrConflict
		}
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrConflict
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrConflict {
			return ErrConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
