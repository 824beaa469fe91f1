package pets

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	for _, cur := range r.byID {
		if cur.OwnerUserID == p.OwnerUserID {
			return ErrAlreadyExists
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetByOwner(ctx context.Context, ownerUserID string) (Pet, error) {
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) IncrementDaily(ctx context.Context, ownerUserID string, delta ActivityCounters) error {
	p, err := r.GetByOwner(ctx, ownerUserID)
	if err != nil {
		return err
	}
	p.Daily.WalkMinutes += delta.WalkMinutes
	p.Daily.SleepHours += delta.SleepHours
	p.Daily.Meals += delta.Meals
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) SetDaily(ctx context.Context, ownerUserID string, c ActivityCounters) error {
	p, err := r.GetByOwner(ctx, ownerUserID)
	if err != nil {
		return err
	}
	p.Daily = c
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) ResetDaily(ctx context.Context) (int64, error) {
	for id, p := range r.byID {
		p.Daily = ActivityCounters{}
		p.DailySteps = 0
		p.Tasks = Tasks{}
		r.byID[id] = p
	}
	return int64(len(r.byID)), nil
}

type testPhotos struct {
	key         string
	contentType string
	data        []byte
	err         error
}

func (s *testPhotos) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.key, s.contentType, s.data = key, contentType, data
	return "https://cdn.example.test/" + key, nil
}

func newTestService(photos PhotoStore) (*Service, *testRepo, time.Time) {
	repo := newTestRepo()
	svc := NewService(repo, photos)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo, now
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_StartsWithZeroCounters(t *testing.T) {
	svc, _, now := newTestService(nil)

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:    "  Luna ",
		Species: "Dog",
		Breed:   "Beagle",
		Age:     2.5,
		Weight:  11,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Luna", p.Name)
	assert.Equal(t, "owner-1", p.OwnerUserID)
	assert.True(t, p.Daily.IsZero())
	assert.Zero(t, p.DailySteps)
	assert.Equal(t, now, p.CreatedAt)
}

func TestService_Create_RequiresNameAndSpecies(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.Create(context.Background(), "owner-1", CreateInput{Species: "Cat"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "owner-1", CreateInput{Name: "Michi"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "", CreateInput{Name: "Michi", Species: "Cat"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "owner-1", CreateInput{Name: "Michi", Species: "Cat", Weight: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_OnePetPerOwner(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "Dog"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "owner-1", CreateInput{Name: "Sol", Species: "Cat"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_IsOwnedBy(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "Dog"})
	require.NoError(t, err)

	owned, err := svc.IsOwnedBy(ctx, p.ID, "owner-1")
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = svc.IsOwnedBy(ctx, p.ID, "owner-2")
	require.NoError(t, err)
	assert.False(t, owned)

	_, err = svc.IsOwnedBy(ctx, "missing", "owner-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_Partial(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "Dog", Breed: "Beagle", Weight: 10})
	require.NoError(t, err)

	later := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }

	w := 12.5
	name := "Luna II"
	got, err := svc.Update(ctx, p.ID, UpdateInput{Name: &name, Weight: &w})
	require.NoError(t, err)

	assert.Equal(t, "Luna II", got.Name)
	assert.Equal(t, 12.5, got.Weight)
	assert.Equal(t, "Beagle", got.Breed, "campos nil no se tocan")
	assert.Equal(t, later, got.UpdatedAt)

	empty := " "
	_, err = svc.Update(ctx, p.ID, UpdateInput{Species: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, "missing", UpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_SetTasks(t *testing.T) {
	svc, _, _ := newTestService(nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "Dog"})
	require.NoError(t, err)

	yes := true
	got, err := svc.SetTasks(ctx, p.ID, TasksInput{Breakfast: &yes, Medication: &yes})
	require.NoError(t, err)
	assert.Equal(t, Tasks{Breakfast: true, Medication: true}, got.Tasks)

	no := false
	got, err = svc.SetTasks(ctx, p.ID, TasksInput{Breakfast: &no})
	require.NoError(t, err)
	assert.Equal(t, Tasks{Medication: true}, got.Tasks)
}

func TestService_DailyCounters(t *testing.T) {
	svc, repo, _ := newTestService(nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "Dog"})
	require.NoError(t, err)

	require.NoError(t, svc.IncrementDaily(ctx, "owner-1", ActivityCounters{WalkMinutes: 30}))
	require.NoError(t, svc.IncrementDaily(ctx, "owner-1", ActivityCounters{WalkMinutes: 15, Meals: 1}))
	assert.Equal(t, ActivityCounters{WalkMinutes: 45, Meals: 1}, repo.byID[p.ID].Daily)

	// delta cero no llega al repo, aunque el owner no tenga mascota
	assert.NoError(t, svc.IncrementDaily(ctx, "nobody", ActivityCounters{}))
	assert.ErrorIs(t, svc.IncrementDaily(ctx, "nobody", ActivityCounters{Meals: 1}), ErrNotFound)

	require.NoError(t, svc.SetDaily(ctx, "owner-1", ActivityCounters{SleepHours: 8}))
	assert.Equal(t, ActivityCounters{SleepHours: 8}, repo.byID[p.ID].Daily)

	yes := true
	_, err = svc.SetTasks(ctx, p.ID, TasksInput{Dinner: &yes})
	require.NoError(t, err)

	n, err := svc.ResetDaily(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, repo.byID[p.ID].Daily.IsZero())
	assert.Equal(t, Tasks{}, repo.byID[p.ID].Tasks)
}

func TestService_UploadPhoto(t *testing.T) {
	photos := &testPhotos{}
	svc, _, now := newTestService(photos)
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "Dog"})
	require.NoError(t, err)

	raw := []byte{0x89, 'P', 'N', 'G'}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	got, err := svc.UploadPhoto(ctx, p.ID, dataURL)
	require.NoError(t, err)

	assert.Equal(t, raw, photos.data)
	assert.Equal(t, "image/png", photos.contentType)
	assert.True(t, strings.HasPrefix(photos.key, "pet-photos/"+p.ID+"-"))
	assert.True(t, strings.HasSuffix(photos.key, ".png"))
	assert.Equal(t, "https://cdn.example.test/"+photos.key, got.PhotoURL)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestService_UploadPhoto_Errors(t *testing.T) {
	ctx := context.Background()

	svc, _, _ := newTestService(nil)
	_, err := svc.UploadPhoto(ctx, "pet-1", "data:image/png;base64,AAAA")
	assert.ErrorIs(t, err, ErrPhotosDisabled)

	photos := &testPhotos{}
	svc, _, _ = newTestService(photos)
	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Luna", Species: "Dog"})
	require.NoError(t, err)

	for _, bad := range []string{"", "hola", "data:text/plain;base64,aG9sYQ==", "data:image/png;base64,%%%"} {
		_, err = svc.UploadPhoto(ctx, p.ID, bad)
		assert.ErrorIs(t, err, ErrInvalidImage, bad)
	}

	photos.err = errors.New("s3 down")
	_, err = svc.UploadPhoto(ctx, p.ID, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("jpg")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3 down")
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.NotEmpty(t, extensionFor("image/webp"))
}
