package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireflow/interviewer/internal/core/domain"
)

const interviewSettingsID = "interview"

type settingsDoc struct {
	ID                   string    `bson:"_id"`
	domain.RuntimeConfig `bson:",inline"`
	UpdatedAt            time.Time `bson:"updated_at"`
}

// SettingsRepository persists the runtime interview config as one document.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

func (r *SettingsRepository) Load(ctx context.Context) (*domain.RuntimeConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": interviewSettingsID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("load settings: %w", err)
	}
	cfg := doc.RuntimeConfig
	return &cfg, nil
}

func (r *SettingsRepository) Save(ctx context.Context, cfg domain.RuntimeConfig) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := settingsDoc{ID: interviewSettingsID, RuntimeConfig: cfg, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": interviewSettingsID}, doc, opts); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
