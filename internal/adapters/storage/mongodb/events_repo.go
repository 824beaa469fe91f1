package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tailtime/internal/domain/events"
)

type eventDoc struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"userId"`
	Title       string    `bson:"title"`
	Date        time.Time `bson:"date"`
	Type        string    `bson:"type"`
	IsCompleted bool      `bson:"isCompleted"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type EventsRepo struct {
	coll *mongo.Collection
}

func NewEventsRepo(db *mongo.Database) *EventsRepo {
	return &EventsRepo{coll: db.Collection(eventsCollection)}
}

func (r *EventsRepo) Create(ctx context.Context, e events.Event) error {
	_, err := r.coll.InsertOne(ctx, eventDoc{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Date:        e.Date,
		Type:        string(e.Type),
		IsCompleted: e.IsCompleted,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	})
	return errors.Wrap(err, "mongo: insert event")
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	var d eventDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, errors.Wrap(err, "mongo: find event")
	}
	return d.toDomain(), nil
}

func (r *EventsRepo) ListByUser(ctx context.Context, userID string, filter events.ListFilter) ([]events.Event, error) {
	q := bson.M{"userId": userID}
	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		q["type"] = bson.M{"$in": types}
	}
	date := bson.M{}
	if filter.From != nil {
		date["$gte"] = *filter.From
	}
	if filter.To != nil {
		date["$lte"] = *filter.To
	}
	if len(date) > 0 {
		q["date"] = date
	}
	if filter.Pending {
		q["isCompleted"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, errors.Wrap(err, "mongo: list events")
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "mongo: decode events")
	}

	out := make([]events.Event, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *EventsRepo) Update(ctx context.Context, e events.Event) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": e.ID}, bson.M{"$set": bson.M{
		"title":       e.Title,
		"date":        e.Date,
		"type":        string(e.Type),
		"isCompleted": e.IsCompleted,
		"updatedAt":   e.UpdatedAt,
	}})
	if err != nil {
		return errors.Wrap(err, "mongo: update event")
	}
	if res.MatchedCount == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "mongo: delete event")
	}
	if res.DeletedCount == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (d eventDoc) toDomain() events.Event {
	return events.Event{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Date:        d.Date,
		Type:        events.EventType(d.Type),
		IsCompleted: d.IsCompleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
