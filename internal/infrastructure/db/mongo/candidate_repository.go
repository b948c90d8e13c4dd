package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireflow/interviewer/internal/core/domain"
)

type CandidateRepository struct {
	col *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) *CandidateRepository {
	return &CandidateRepository{col: db.Collection(collectionCandidates)}
}

func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CandidateRepository) findOne(ctx context.Context, filter bson.M) (*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Candidate
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("find candidate: %w", err)
	}
	return &c, nil
}

func (r *CandidateRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Candidate, error) {
	out := make(map[string]*domain.Candidate, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find candidates: %w", err)
	}
	var found []domain.Candidate
	if err := cur.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	for i := range found {
		out[found[i].ID] = &found[i]
	}
	return out, nil
}

func (r *CandidateRepository) SearchByEmail(ctx context.Context, fragment string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := r.col.Find(ctx, emailContains(fragment), opts)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}
	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

func (r *CandidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCandidateExists
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (r *CandidateRepository) UpdateNames(ctx context.Context, id, firstName, lastName string) error {
	set := bson.M{}
	if firstName != "" {
		set["first_name"] = firstName
	}
	if lastName != "" {
		set["last_name"] = lastName
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

// emailContains matches emails containing fragment, ignoring case.
func emailContains(fragment string) bson.M {
	return bson.M{"email": bson.M{"$regex": regexp.QuoteMeta(fragment), "$options": "i"}}
}
