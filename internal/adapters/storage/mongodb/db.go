package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Colecciones (mismos nombres que generaba el backend anterior).
const (
	usersCollection    = "users"
	petsCollection     = "pets"
	activityCollection = "activitylogs"
	eventsCollection   = "events"
	medicalCollection  = "medicalrecords"
)

// Open conecta y hace ping. El caller cierra con client.Disconnect.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongo: connect")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo: ping")
	}
	return client, nil
}

// EnsureIndexes crea los índices que sostienen unicidad y consultas.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		petsCollection: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		activityCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "type", Value: 1}, {Key: "date", Value: 1}}},
		},
		eventsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}},
		},
		medicalCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "dateGiven", Value: -1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "mongo: create indexes on %s", coll)
		}
	}
	return nil
}

// timezoneFor: $dayOfWeek acepta nombres Olson o un offset "+hh:mm".
func timezoneFor(loc *time.Location, now time.Time) string {
	if loc == nil {
		loc = time.Local
	}
	if name := loc.String(); name != "" && name != "Local" {
		return name
	}

	_, offset := now.In(loc).Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
