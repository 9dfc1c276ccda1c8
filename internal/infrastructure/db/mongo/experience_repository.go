package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devport/portfolio-api/internal/core/domain"
)

const collectionExperiences = "experiences"

type ExperienceRepository struct {
	col *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{col: db.Collection(collectionExperiences)}
}

type experienceDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Company      string             `bson:"company"`
	Role         string             `bson:"role"`
	WorkTimeline string             `bson:"workTimeline"`
	Description  string             `bson:"description"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d experienceDoc) toDomain() *domain.Experience {
	return &domain.Experience{
		ID:           d.ID.Hex(),
		Company:      d.Company,
		Role:         d.Role,
		WorkTimeline: d.WorkTimeline,
		Description:  d.Description,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := experienceDoc{
		Company:      e.Company,
		Role:         e.Role,
		WorkTimeline: e.WorkTimeline,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert experience: %w", err)
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExperienceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc experienceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ExperienceRepository) FindAll(ctx context.Context) ([]domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find experiences: %w", err)
	}
	defer cur.Close(ctx)

	experiences := []domain.Experience{}
	for cur.Next(ctx) {
		var doc experienceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode experience: %w", err)
		}
		experiences = append(experiences, *doc.toDomain())
	}
	return experiences, cur.Err()
}

func (r *ExperienceRepository) Update(ctx context.Context, e *domain.Experience) (*domain.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return nil, domain.ErrExperienceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"company":      e.Company,
		"role":         e.Role,
		"workTimeline": e.WorkTimeline,
		"description":  e.Description,
		"updatedAt":    e.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrExperienceNotFound
	}
	return e, nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrExperienceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}
