package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeready/portal/internal/core/domain"
)

const collectionUsers = "portal_users"

// UserRepository implements ports.UserStore on the portal_users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID                 string `bson:"_id"`
	Name               string `bson:"name"`
	Email              string `bson:"email"`
	Password           string `bson:"password"`
	Company            string `bson:"company,omitempty"`
	RegistrationNumber string `bson:"registration_number,omitempty"`
	Country            string `bson:"country,omitempty"`
	Industry           string `bson:"industry,omitempty"`
	Address            string `bson:"address,omitempty"`
	Phone              string `bson:"phone,omitempty"`
	TaxID              string `bson:"tax_id,omitempty"`
	VAT                string `bson:"vat,omitempty"`
	AvatarURL          string `bson:"avatar_url"`
	CreatedAt          int64  `bson:"created_at"`
	UpdatedAt          int64  `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Password:           u.Password,
		Company:            u.Company,
		RegistrationNumber: u.RegistrationNumber,
		Country:            u.Country,
		Industry:           u.Industry,
		Address:            u.Address,
		Phone:              u.Phone,
		TaxID:              u.TaxID,
		VAT:                u.VAT,
		AvatarURL:          u.AvatarURL,
		CreatedAt:          timeToUnix(u.CreatedAt),
		UpdatedAt:          timeToUnix(u.UpdatedAt),
	}
}

func (m mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		Password:           m.Password,
		Company:            m.Company,
		RegistrationNumber: m.RegistrationNumber,
		Country:            m.Country,
		Industry:           m.Industry,
		Address:            m.Address,
		Phone:              m.Phone,
		TaxID:              m.TaxID,
		VAT:                m.VAT,
		AvatarURL:          m.AvatarURL,
		CreatedAt:          unixToTime(m.CreatedAt),
		UpdatedAt:          unixToTime(m.UpdatedAt),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toMongoUser(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func timeToUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
