package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tailtime/internal/domain/pets"
)

type petDoc struct {
	ID               string    `bson:"_id"`
	OwnerID          string    `bson:"ownerId"`
	PetName          string    `bson:"petName"`
	Species          string    `bson:"species"`
	Breed            string    `bson:"breed"`
	Age              float64   `bson:"age"`
	Weight           float64   `bson:"weight"`
	PhotoURL         string    `bson:"photoUrl"`
	Tasks            tasksDoc  `bson:"tasks"`
	DailySteps       int       `bson:"dailySteps"`
	DailySleep       float64   `bson:"dailySleep"`
	DailyMeals       int       `bson:"dailyMeals"`
	DailyWalkMinutes float64   `bson:"dailyWalkMinutes"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

type tasksDoc struct {
	Breakfast   bool `bson:"breakfast"`
	MorningWalk bool `bson:"morningWalk"`
	Dinner      bool `bson:"dinner"`
	Medication  bool `bson:"medication"`
}

type PetsRepo struct {
	coll *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{coll: db.Collection(petsCollection)}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.coll.InsertOne(ctx, toPetDoc(p))
	if mongo.IsDuplicateKeyError(err) {
		return pets.ErrAlreadyExists
	}
	return errors.Wrap(err, "mongo: insert pet")
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PetsRepo) GetByOwner(ctx context.Context, ownerUserID string) (pets.Pet, error) {
	return r.findOne(ctx, bson.M{"ownerId": ownerUserID})
}

// Update no toca owner ni contadores.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
		"petName":  p.Name,
		"species":  p.Species,
		"breed":    p.Breed,
		"age":      p.Age,
		"weight":   p.Weight,
		"photoUrl": p.PhotoURL,
		"tasks": tasksDoc{
			Breakfast:   p.Tasks.Breakfast,
			MorningWalk: p.Tasks.MorningWalk,
			Dinner:      p.Tasks.Dinner,
			Medication:  p.Tasks.Medication,
		},
		"updatedAt": p.UpdatedAt,
	}})
	if err != nil {
		return errors.Wrap(err, "mongo: update pet")
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// IncrementDaily usa $inc: una sola operación atómica sobre el documento.
func (r *PetsRepo) IncrementDaily(ctx context.Context, ownerUserID string, delta pets.ActivityCounters) error {
	inc := bson.M{}
	if delta.WalkMinutes != 0 {
		inc["dailyWalkMinutes"] = delta.WalkMinutes
	}
	if delta.SleepHours != 0 {
		inc["dailySleep"] = delta.SleepHours
	}
	if delta.Meals != 0 {
		inc["dailyMeals"] = delta.Meals
	}
	if len(inc) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"ownerId": ownerUserID}, bson.M{"$inc": inc})
	if err != nil {
		return errors.Wrap(err, "mongo: increment daily counters")
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) SetDaily(ctx context.Context, ownerUserID string, c pets.ActivityCounters) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"ownerId": ownerUserID}, bson.M{"$set": bson.M{
		"dailyWalkMinutes": c.WalkMinutes,
		"dailySleep":       c.SleepHours,
		"dailyMeals":       c.Meals,
	}})
	if err != nil {
		return errors.Wrap(err, "mongo: set daily counters")
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) ResetDaily(ctx context.Context) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{
		"dailySteps":       0,
		"dailySleep":       0,
		"dailyMeals":       0,
		"dailyWalkMinutes": 0,
		"tasks":            tasksDoc{},
	}})
	if err != nil {
		return 0, errors.Wrap(err, "mongo: reset daily counters")
	}
	return res.MatchedCount, nil
}

func (r *PetsRepo) findOne(ctx context.Context, filter bson.M) (pets.Pet, error) {
	var doc petDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, errors.Wrap(err, "mongo: find pet")
	}
	return doc.toDomain(), nil
}

func toPetDoc(p pets.Pet) petDoc {
	return petDoc{
		ID:      p.ID,
		OwnerID: p.OwnerUserID,
		PetName: p.Name,
		Species: p.Species,
		Breed:   p.Breed,
		Age:     p.Age,
		Weight:  p.Weight,

		PhotoURL: p.PhotoURL,
		Tasks: tasksDoc{
			Breakfast:   p.Tasks.Breakfast,
			MorningWalk: p.Tasks.MorningWalk,
			Dinner:      p.Tasks.Dinner,
			Medication:  p.Tasks.Medication,
		},

		DailySteps:       p.DailySteps,
		DailySleep:       p.Daily.SleepHours,
		DailyMeals:       p.Daily.Meals,
		DailyWalkMinutes: p.Daily.WalkMinutes,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (d petDoc) toDomain() pets.Pet {
	return pets.Pet{
		ID:          d.ID,
		OwnerUserID: d.OwnerID,
		Name:        d.PetName,
		Species:     d.Species,
		Breed:       d.Breed,
		Age:         d.Age,
		Weight:      d.Weight,
		PhotoURL:    d.PhotoURL,
		Tasks: pets.Tasks{
			Breakfast:   d.Tasks.Breakfast,
			MorningWalk: d.Tasks.MorningWalk,
			Dinner:      d.Tasks.Dinner,
			Medication:  d.Tasks.Medication,
		},
		DailySteps: d.DailySteps,
		Daily: pets.ActivityCounters{
			WalkMinutes: d.DailyWalkMinutes,
			SleepHours:  d.DailySleep,
			Meals:       d.DailyMeals,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
