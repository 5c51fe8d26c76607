package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

const expertsCollection = "experts"

type ExpertRepository struct {
	coll *mongo.Collection
}

func NewExpertRepository(db *mongo.Database) *ExpertRepository {
	return &ExpertRepository{coll: db.Collection(expertsCollection)}
}

type expertDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone,omitempty"`
	Service      string             `bson:"service"`
	DOB          string             `bson:"dob,omitempty"`
	Location     string             `bson:"location,omitempty"`
	Specialty    string             `bson:"specialty,omitempty"`
	Bio          string             `bson:"bio,omitempty"`
	HourlyRate   float64            `bson:"hourly_rate,omitempty"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *expertDoc) toDomain() *domain.Expert {
	return &domain.Expert{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		Service:      d.Service,
		DOB:          d.DOB,
		Location:     d.Location,
		Specialty:    d.Specialty,
		Bio:          d.Bio,
		HourlyRate:   d.HourlyRate,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *ExpertRepository) Create(ctx context.Context, expert *domain.Expert) (*domain.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := expertDoc{
		FirstName:    expert.FirstName,
		LastName:     expert.LastName,
		Email:        expert.Email,
		Phone:        expert.Phone,
		Service:      expert.Service,
		DOB:          expert.DOB,
		Location:     expert.Location,
		PasswordHash: expert.PasswordHash,
		CreatedAt:    expert.CreatedAt,
		UpdatedAt:    expert.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrExpertExists
		}
		return nil, fmt.Errorf("insert expert: %w", err)
	}

	created := *expert
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ExpertRepository) FindByEmail(ctx context.Context, email string) (*domain.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc expertDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, fmt.Errorf("find expert: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ExpertRepository) FindByID(ctx context.Context, id string) (*domain.Expert, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExpertNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc expertDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, fmt.Errorf("find expert: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ExpertRepository) UpdateProfile(ctx context.Context, id string, update ports.ExpertProfileUpdate) (*domain.Expert, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExpertNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Specialty != nil {
		set["specialty"] = *update.Specialty
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.HourlyRate != nil {
		set["hourly_rate"] = *update.HourlyRate
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc expertDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExpertNotFound
		}
		return nil, fmt.Errorf("update expert: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ExpertRepository) List(ctx context.Context, service string) ([]*domain.Expert, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if service != "" {
		filter["service"] = service
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	defer cur.Close(ctx)

	var experts []*domain.Expert
	for cur.Next(ctx) {
		var doc expertDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode expert: %w", err)
		}
		experts = append(experts, doc.toDomain())
	}
	return experts, cur.Err()
}

func (r *ExpertRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique email index plus the service-category
// index backing the public directory filter.
func (r *ExpertRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "service", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
