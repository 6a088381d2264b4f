package bookingRepo

import (
	"context"
	"fmt"

	"gigbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// The transactional writes close the check-then-write race between two
// concurrent submissions for overlapping slots: the overlap count and the
// write happen inside one Mongo transaction, so the second writer sees the
// first one's booking and fails with ErrSlotTaken.

func (repo *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	return repo.inTransaction(ctx, func(sc mongo.SessionContext) error {
		count, err := repo.coll.CountDocuments(sc, overlapFilter(booking.Slot, ""))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
}

func (repo *MongoBookingRepo) UpdateSlotIfFree(ctx context.Context, id string, slot models.TimeSlot) error {
	return repo.inTransaction(ctx, func(sc mongo.SessionContext) error {
		count, err := repo.coll.CountDocuments(sc, overlapFilter(slot, id))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}
		res, err := repo.coll.UpdateOne(sc, bson.M{"id": id}, bson.M{"$set": bson.M{"slot": slot}})
		if err != nil {
			return fmt.Errorf("update booking slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (repo *MongoBookingRepo) inTransaction(ctx context.Context, txnFn func(sc mongo.SessionContext) error) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

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
		if err == ErrSlotTaken || err == ErrNotFound {
			return err
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}
