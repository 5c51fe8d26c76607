package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

const servicesCollection = "services"

type ServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{coll: db.Collection(servicesCollection)}
}

type serviceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ExpertID    string             `bson:"expert_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	BasePrice   float64            `bson:"base_price"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *serviceDoc) toDomain() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		ID:          d.ID.Hex(),
		ExpertID:    d.ExpertID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		BasePrice:   d.BasePrice,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := serviceDoc{
		ExpertID:    s.ExpertID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		BasePrice:   s.BasePrice,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.ServiceOffering, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrServiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc serviceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ServiceRepository) ListActive(ctx context.Context, filter ports.ServiceFilter) ([]*domain.ServiceOffering, error) {
	query := bson.M{"is_active": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Query != "" {
		query["title"] = bson.M{"$regex": regexp.QuoteMeta(filter.Query), "$options": "i"}
	}
	return r.list(ctx, query)
}

func (r *ServiceRepository) ListByExpert(ctx context.Context, expertID string) ([]*domain.ServiceOffering, error) {
	return r.list(ctx, bson.M{"expert_id": expertID})
}

func (r *ServiceRepository) list(ctx context.Context, filter bson.M) ([]*domain.ServiceOffering, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	var services []*domain.ServiceOffering
	for cur.Next(ctx) {
		var doc serviceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, doc.toDomain())
	}
	return services, cur.Err()
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes behind catalog filtering and the
// expert's own listing.
func (r *ServiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "expert_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "is_active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
