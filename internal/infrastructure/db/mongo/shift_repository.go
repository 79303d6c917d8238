package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

type ShiftRepository struct {
	col *mongo.Collection
}

func NewShiftRepository(db *mongo.Database) *ShiftRepository {
	return &ShiftRepository{col: db.Collection(collectionShifts)}
}

// Create inserts a new shift document. The unique (user_id, date) index
// turns a duplicate into domain.ErrConflict.
func (r *ShiftRepository) Create(ctx context.Context, s *domain.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *s
	doc.User = nil
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return duplicateAs(err, domain.ErrConflict)
	}
	return nil
}

func (r *ShiftRepository) FindByID(ctx context.Context, id string) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Shift
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShiftRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update shift status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *ShiftRepository) ListByUser(ctx context.Context, userID string) ([]domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	shifts := []domain.Shift{}
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *ShiftRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.Shift, error) {
	return r.listJoined(ctx, bson.M{"status": status}, 1)
}

func (r *ShiftRepository) ListAll(ctx context.Context) ([]domain.Shift, error) {
	return r.listJoined(ctx, bson.M{}, -1)
}

// listJoined runs an aggregation that matches shifts, orders them by date and
// embeds the owning profile under "user".
func (r *ShiftRepository) listJoined(ctx context.Context, match bson.M, dateOrder int) ([]domain.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: dateOrder}, {Key: "created_at", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionUsers},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	shifts := []domain.Shift{}
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}
