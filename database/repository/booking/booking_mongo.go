package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"gigbook/database"
	"gigbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements Repository on a MongoDB bookings collection.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a repository over the shared Mongo client.
func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.MongoClient.Database("gigbook")
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) ListActive(ctx context.Context, rng *DateRange) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": bson.M{"$ne": models.StatusCancelled}}
	if rng != nil {
		filter["slot.date"] = bson.M{"$gte": rng.From, "$lte": rng.To}
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing active bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) ListActiveOnDate(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.ListActive(ctx, &DateRange{From: date, To: date})
}

func (repo *MongoBookingRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{}
	for key, value := range fields {
		update[key] = value
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// overlapFilter matches active bookings whose slot overlaps [start, end) on
// the given date, half-open semantics, optionally excluding one booking id.
func overlapFilter(slot models.TimeSlot, excludeID string) bson.M {
	filter := bson.M{
		"slot.date":  slot.Date,
		"status":     bson.M{"$ne": models.StatusCancelled},
		"slot.start": bson.M{"$lt": slot.End},
		"slot.end":   bson.M{"$gt": slot.Start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}
