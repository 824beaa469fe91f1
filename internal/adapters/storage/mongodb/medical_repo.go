package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tailtime/internal/domain/medical"
)

type medicalDoc struct {
	ID          string     `bson:"_id"`
	UserID      string     `bson:"userId"`
	Category    string     `bson:"category"`
	Title       string     `bson:"title"`
	DateGiven   time.Time  `bson:"dateGiven"`
	NextDueDate *time.Time `bson:"nextDueDate,omitempty"`
	Notes       string     `bson:"notes,omitempty"`
	Value       string     `bson:"value,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt"`
}

type MedicalRepo struct {
	coll *mongo.Collection
}

func NewMedicalRepo(db *mongo.Database) *MedicalRepo {
	return &MedicalRepo{coll: db.Collection(medicalCollection)}
}

func (r *MedicalRepo) Create(ctx context.Context, rec medical.Record) error {
	_, err := r.coll.InsertOne(ctx, medicalDoc{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Category:    string(rec.Category),
		Title:       rec.Title,
		DateGiven:   rec.DateGiven,
		NextDueDate: rec.NextDueDate,
		Notes:       rec.Notes,
		Value:       rec.Value,
		CreatedAt:   rec.CreatedAt,
	})
	return errors.Wrap(err, "mongo: insert medical record")
}

func (r *MedicalRepo) ListByUser(ctx context.Context, userID string, category medical.Category) ([]medical.Record, error) {
	filter := bson.M{"userId": userID}
	if category != "" {
		filter["category"] = string(category)
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "dateGiven", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "mongo: list medical records")
	}
	var docs []medicalDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "mongo: decode medical records")
	}

	out := make([]medical.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, medical.Record{
			ID:          d.ID,
			UserID:      d.UserID,
			Category:    medical.Category(d.Category),
			Title:       d.Title,
			DateGiven:   d.DateGiven,
			NextDueDate: d.NextDueDate,
			Notes:       d.Notes,
			Value:       d.Value,
			CreatedAt:   d.CreatedAt,
		})
	}
	return out, nil
}
