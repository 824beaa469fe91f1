package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tailtime/internal/domain/users"
)

type userDoc struct {
	ID        string         `bson:"_id"`
	FullName  string         `bson:"fullName"`
	Email     string         `bson:"email"`
	Password  string         `bson:"password"` // hash bcrypt
	Settings  map[string]any `bson:"settings"`
	CreatedAt time.Time      `bson:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

type UsersRepo struct {
	coll *mongo.Collection
}

func NewUsersRepo(db *mongo.Database) *UsersRepo {
	return &UsersRepo{coll: db.Collection(usersCollection)}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	settings := u.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	_, err := r.coll.InsertOne(ctx, userDoc{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Settings:  settings,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return users.ErrAlreadyExists
	}
	return errors.Wrap(err, "mongo: insert user")
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// Update no cambia el email.
func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	settings := u.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": u.ID}, bson.M{"$set": bson.M{
		"fullName":  u.FullName,
		"password":  u.PasswordHash,
		"settings":  settings,
		"updatedAt": u.UpdatedAt,
	}})
	if err != nil {
		return errors.Wrap(err, "mongo: update user")
	}
	if res.MatchedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.M) (users.User, error) {
	var d userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, errors.Wrap(err, "mongo: find user")
	}

	if d.Settings == nil {
		d.Settings = map[string]any{}
	}
	return users.User{
		ID:           d.ID,
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.Password,
		Settings:     d.Settings,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}
