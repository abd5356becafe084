package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDoc struct {
	ID           string     `bson:"_id"`
	Email        string     `bson:"email"`
	Name         string     `bson:"name"`
	Avatar       string     `bson:"avatar"`
	Provider     string     `bson:"provider"`
	GoogleID     string     `bson:"google_id,omitempty"` // omitted so the sparse unique index skips it
	PasswordHash string     `bson:"password_hash"`
	IsVerified   bool       `bson:"is_verified"`
	LastLoginAt  *time.Time `bson:"last_login_at"`
	CreatedAt    time.Time  `bson:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

func toUserDoc(u domain.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Avatar:       u.Avatar,
		Provider:     string(u.Provider),
		GoogleID:     u.GoogleID,
		PasswordHash: u.PasswordHash,
		IsVerified:   u.IsVerified,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           d.ID,
		Email:        d.Email,
		Name:         d.Name,
		Avatar:       d.Avatar,
		Provider:     domain.Provider(d.Provider),
		GoogleID:     d.GoogleID,
		PasswordHash: d.PasswordHash,
		IsVerified:   d.IsVerified,
		LastLoginAt:  d.LastLoginAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type usersRepo struct {
	c *mongo.Collection
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.M) (domain.User, error) {
	var doc userDoc
	if err := r.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *usersRepo) GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error) {
	if googleID == "" {
		return domain.User{}, store.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"google_id": googleID})
}

func (r *usersRepo) ListUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.User, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.c.InsertOne(ctx, toUserDoc(u))
	return mapDuplicate(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id, name, avatar string, at time.Time) error {
	return r.updateOne(ctx, id, bson.M{"name": name, "avatar": avatar, "updated_at": at})
}

func (r *usersRepo) LinkGoogle(ctx context.Context, id, googleID, avatar string, at time.Time) error {
	set := bson.M{
		"google_id":   googleID,
		"provider":    string(domain.ProviderGoogle),
		"is_verified": true,
		"updated_at":  at,
	}
	if avatar != "" {
		set["avatar"] = avatar
	}
	return r.updateOne(ctx, id, set)
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.updateOne(ctx, id, bson.M{"last_login_at": at, "updated_at": at})
}

func (r *usersRepo) updateOne(ctx context.Context, id string, set bson.M) error {
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return mapDuplicate(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
