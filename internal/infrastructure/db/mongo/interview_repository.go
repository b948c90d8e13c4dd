package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireflow/interviewer/internal/core/domain"
	"github.com/hireflow/interviewer/internal/core/ports"
)

type InterviewRepository struct {
	col *mongo.Collection
}

func NewInterviewRepository(db *mongo.Database) *InterviewRepository {
	return &InterviewRepository{col: db.Collection(collectionInterviews)}
}

func (r *InterviewRepository) Create(ctx context.Context, i *domain.Interview) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, i); err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) FindByID(ctx context.Context, id string) (*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var i domain.Interview
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&i); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("find interview: %w", err)
	}
	return &i, nil
}

// Advance is a single-document compare-and-swap on current_index.
func (r *InterviewRepository) Advance(ctx context.Context, in ports.AdvanceInput) (*domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, update := advanceQuery(in)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var i domain.Interview
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&i); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStaleQuestion
		}
		return nil, fmt.Errorf("advance interview: %w", err)
	}
	return &i, nil
}

func advanceQuery(in ports.AdvanceInput) (bson.M, bson.M) {
	filter := bson.M{
		"_id":           in.InterviewID,
		"status":        domain.StatusInProgress,
		"current_index": in.ExpectedIndex,
	}
	update := bson.M{
		"$inc": bson.M{"current_index": 1, "total_score": in.Score},
	}
	if in.Completed {
		update["$set"] = bson.M{
			"status":      domain.StatusCompleted,
			"end_time":    in.At.UTC(),
			"final_score": in.FinalScore,
		}
	}
	return filter, update
}

// List returns a page of interviews, newest first.
func (r *InterviewRepository) List(ctx context.Context, f ports.ListInterviewsFilter) ([]*domain.Interview, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := listFilter(f)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count interviews: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list interviews: %w", err)
	}
	items := make([]*domain.Interview, 0, f.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode interviews: %w", err)
	}
	return items, total, nil
}

func listFilter(f ports.ListInterviewsFilter) bson.M {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if len(f.CandidateIDs) > 0 {
		filter["candidate_id"] = bson.M{"$in": f.CandidateIDs}
	}
	return filter
}

type QuestionRepository struct {
	col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{col: db.Collection(collectionQuestions)}
}

func (r *QuestionRepository) CreateMany(ctx context.Context, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert questions: %w", err)
	}
	return nil
}

func (r *QuestionRepository) ListByInterview(ctx context.Context, interviewID string) ([]domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "question_order", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"interview_id": interviewID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	questions := []domain.Question{}
	if err := cur.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) FindByOrder(ctx context.Context, interviewID string, order int) (*domain.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var q domain.Question
	err := r.col.FindOne(ctx, bson.M{"interview_id": interviewID, "question_order": order}).Decode(&q)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("find question: %w", err)
	}
	return &q, nil
}
