package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tailtime/internal/domain/activity"
)

type activityDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	Type      string    `bson:"type"`
	SubType   string    `bson:"subType,omitempty"`
	Value     float64   `bson:"value"`
	Duration  float64   `bson:"duration"`
	Date      time.Time `bson:"date"`
	Notes     string    `bson:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}

type ActivityRepo struct {
	coll *mongo.Collection
}

func NewActivityRepo(db *mongo.Database) *ActivityRepo {
	return &ActivityRepo{coll: db.Collection(activityCollection)}
}

func (r *ActivityRepo) Append(ctx context.Context, l activity.Log) error {
	_, err := r.coll.InsertOne(ctx, activityDoc{
		ID:        l.ID,
		UserID:    l.UserID,
		Type:      string(l.Type),
		SubType:   l.SubType,
		Value:     l.Value,
		Duration:  l.Duration,
		Date:      l.Date,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	})
	return errors.Wrap(err, "mongo: insert activity log")
}

func (r *ActivityRepo) List(ctx context.Context, userID string, f activity.Filter) ([]activity.Log, error) {
	filter := bson.M{"userId": userID}
	if f.Type != "" {
		filter["type"] = string(f.Type)
	}
	date := bson.M{}
	if !f.From.IsZero() {
		date["$gte"] = f.From
	}
	if !f.To.IsZero() {
		date["$lte"] = f.To
	}
	if len(date) > 0 {
		filter["date"] = date
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "mongo: list activity logs")
	}

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "mongo: decode activity logs")
	}

	out := make([]activity.Log, 0, len(docs))
	for _, d := range docs {
		out = append(out, activity.Log{
			ID:        d.ID,
			UserID:    d.UserID,
			Type:      activity.Type(d.Type),
			SubType:   d.SubType,
			Value:     d.Value,
			Duration:  d.Duration,
			Date:      d.Date,
			Notes:     d.Notes,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

// WeeklyTotals: $match + $group por $dayOfWeek (1 = domingo) en la zona pedida.
func (r *ActivityRepo) WeeklyTotals(ctx context.Context, q activity.RollupQuery) ([]activity.DayTotal, error) {
	var sum any
	switch q.Metric {
	case activity.MetricDuration:
		sum = "$duration"
	case activity.MetricCount:
		sum = 1
	default:
		sum = "$value"
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"userId": q.UserID,
			"type":   string(q.Type),
			"date":   bson.M{"$gte": q.Since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dayOfWeek": bson.M{
				"date":     "$date",
				"timezone": timezoneFor(q.Location, rollupNow(q)),
			}},
			"total": bson.M{"$sum": sum},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "mongo: weekly totals")
	}

	var rows []struct {
		DayOfWeek int     `bson:"_id"`
		Total     float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "mongo: decode weekly totals")
	}

	out := make([]activity.DayTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, activity.DayTotal{DayOfWeek: row.DayOfWeek, Total: row.Total})
	}
	return out, nil
}

func rollupNow(q activity.RollupQuery) time.Time {
	if q.Now.IsZero() {
		return time.Now()
	}
	return q.Now
}
