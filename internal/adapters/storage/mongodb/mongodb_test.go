package mongodb

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"tailtime/internal/domain/activity"
	"tailtime/internal/domain/events"
	"tailtime/internal/domain/medical"
	"tailtime/internal/domain/pets"
	"tailtime/internal/domain/users"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func duplicateKey() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key error"})
}

func TestPetsRepo(t *testing.T) {
	mt := newMock(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	mt.Run("create duplicate owner", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(duplicateKey())

		err := repo.Create(context.Background(), pets.Pet{ID: "p2", OwnerUserID: "u1", Name: "Sol"})
		assert.ErrorIs(mt, err, pets.ErrAlreadyExists)
	})

	mt.Run("get by owner", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+petsCollection, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "ownerId", Value: "u1"},
			{Key: "petName", Value: "Luna"},
			{Key: "species", Value: "Dog"},
			{Key: "tasks", Value: bson.D{{Key: "dinner", Value: true}}},
			{Key: "dailyWalkMinutes", Value: 45.0},
			{Key: "dailySleep", Value: 8.5},
			{Key: "dailyMeals", Value: int32(2)},
			{Key: "createdAt", Value: now},
			{Key: "updatedAt", Value: now},
		}))

		got, err := repo.GetByOwner(context.Background(), "u1")
		require.NoError(mt, err)
		assert.Equal(mt, "Luna", got.Name)
		assert.True(mt, got.Tasks.Dinner)
		assert.Equal(mt, pets.ActivityCounters{WalkMinutes: 45, SleepHours: 8.5, Meals: 2}, got.Daily)
	})

	mt.Run("get by owner missing", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+petsCollection, mtest.FirstBatch))

		_, err := repo.GetByOwner(context.Background(), "u2")
		assert.ErrorIs(mt, err, pets.ErrNotFound)
	})

	mt.Run("increment daily", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}},
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}},
		)

		require.NoError(mt, repo.IncrementDaily(context.Background(), "u1", pets.ActivityCounters{WalkMinutes: 30}))
		err := repo.IncrementDaily(context.Background(), "ghost", pets.ActivityCounters{Meals: 1})
		assert.ErrorIs(mt, err, pets.ErrNotFound)

		// delta cero no llega al servidor
		require.NoError(mt, repo.IncrementDaily(context.Background(), "u1", pets.ActivityCounters{}))
	})

	mt.Run("reset daily", func(mt *mtest.T) {
		repo := NewPetsRepo(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 4}, {Key: "nModified", Value: 3}})

		n, err := repo.ResetDaily(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), n)
	})
}

func TestActivityRepo(t *testing.T) {
	mt := newMock(t)
	date := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)

	mt.Run("append", func(mt *mtest.T) {
		repo := NewActivityRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Append(context.Background(), activity.Log{ID: "a1", UserID: "u1", Type: activity.TypeWalk, Duration: 30, Date: date})
		require.NoError(mt, err)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewActivityRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+activityCollection, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "a1"}, {Key: "userId", Value: "u1"}, {Key: "type", Value: "meal"}, {Key: "value", Value: 1.0}, {Key: "date", Value: date}},
			bson.D{{Key: "_id", Value: "a2"}, {Key: "userId", Value: "u1"}, {Key: "type", Value: "walk"}, {Key: "duration", Value: 15.0}, {Key: "date", Value: date.Add(time.Hour)}},
		))

		got, err := repo.List(context.Background(), "u1", activity.Filter{})
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, activity.TypeMeal, got[0].Type)
		assert.Equal(mt, 15.0, got[1].Duration)
	})

	mt.Run("weekly totals", func(mt *mtest.T) {
		repo := NewActivityRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+activityCollection, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: int32(1)}, {Key: "total", Value: int32(2)}},
			bson.D{{Key: "_id", Value: int32(2)}, {Key: "total", Value: int32(1)}},
		))

		got, err := repo.WeeklyTotals(context.Background(), activity.RollupQuery{
			UserID:   "u1",
			Type:     activity.TypeMeal,
			Since:    date.AddDate(0, 0, -7),
			Metric:   activity.MetricCount,
			Location: time.UTC,
		})
		require.NoError(mt, err)
		assert.ElementsMatch(mt, []activity.DayTotal{{DayOfWeek: 1, Total: 2}, {DayOfWeek: 2, Total: 1}}, got)
	})
}

func TestTimezoneFor(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "America/Lima", timezoneFor(lima, now))
	assert.Equal(t, "-05:00", timezoneFor(time.FixedZone("", -5*3600), now))
	assert.Equal(t, "+05:30", timezoneFor(time.FixedZone("", 5*3600+30*60), now))
}

func TestUsersRepo(t *testing.T) {
	mt := newMock(t)

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.DB)
		mt.AddMockResponses(duplicateKey())

		err := repo.Create(context.Background(), users.User{ID: "u2", Email: "ana@example.com"})
		assert.ErrorIs(mt, err, users.ErrAlreadyExists)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+usersCollection, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u1"},
			{Key: "fullName", Value: "Ana"},
			{Key: "email", Value: "ana@example.com"},
			{Key: "password", Value: "hash"},
			{Key: "settings", Value: bson.D{{Key: "theme", Value: "dark"}}},
		}))

		u, err := repo.GetByEmail(context.Background(), "ana@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "hash", u.PasswordHash)
		assert.Equal(mt, "dark", u.Settings["theme"])
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewUsersRepo(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		assert.ErrorIs(mt, repo.Update(context.Background(), users.User{ID: "nope"}), users.ErrNotFound)
	})
}

func TestEventsRepo(t *testing.T) {
	mt := newMock(t)
	date := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	mt.Run("list", func(mt *mtest.T) {
		repo := NewEventsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+eventsCollection, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "e1"}, {Key: "userId", Value: "u1"}, {Key: "title", Value: "Vacuna"}, {Key: "date", Value: date}, {Key: "type", Value: "vet"}},
		))

		got, err := repo.ListByUser(context.Background(), "u1", events.ListFilter{Pending: true, Limit: 10})
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, events.EventTypeVet, got[0].Type)
		assert.False(mt, got[0].IsCompleted)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewEventsRepo(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		assert.ErrorIs(mt, repo.Delete(context.Background(), "e1"), events.ErrNotFound)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewEventsRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+eventsCollection, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "e1")
		assert.ErrorIs(mt, err, events.ErrNotFound)
	})
}

func TestMedicalRepo(t *testing.T) {
	mt := newMock(t)
	given := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	due := given.AddDate(1, 0, 0)

	mt.Run("list", func(mt *mtest.T) {
		repo := NewMedicalRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+medicalCollection, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "r1"}, {Key: "userId", Value: "u1"}, {Key: "category", Value: "vaccine"}, {Key: "title", Value: "Rabia"}, {Key: "dateGiven", Value: given}, {Key: "nextDueDate", Value: due}},
			bson.D{{Key: "_id", Value: "r2"}, {Key: "userId", Value: "u1"}, {Key: "category", Value: "vital"}, {Key: "title", Value: "Peso"}, {Key: "dateGiven", Value: given}},
		))

		got, err := repo.ListByUser(context.Background(), "u1", "")
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		require.NotNil(mt, got[0].NextDueDate)
		assert.True(mt, due.Equal(*got[0].NextDueDate))
		assert.Nil(mt, got[1].NextDueDate)
		assert.Equal(mt, medical.CategoryVital, got[1].Category)
	})
}
