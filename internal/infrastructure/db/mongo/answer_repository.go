package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireflow/interviewer/internal/core/domain"
)

// AnswerRepository stores evaluated answers. One document per question slot.
type AnswerRepository struct {
	col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{col: db.Collection(collectionAnswers)}
}

// Insert claims the question slot through the unique slot index.
func (r *AnswerRepository) Insert(ctx context.Context, a *domain.Answer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrStaleQuestion
		}
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (r *AnswerRepository) ListByInterview(ctx context.Context, interviewID string) ([]domain.Answer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "question_order", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"interview_id": interviewID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	answers := []domain.Answer{}
	if err := cur.All(ctx, &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return answers, nil
}

func (r *AnswerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete answer: %w", err)
	}
	return nil
}
