package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smsportal/console-gateway/internal/core/domain"
	"github.com/smsportal/console-gateway/internal/core/ports"
)

const decisionCollection = "gate_decisions"

// DecisionRepository implements ports.DecisionRepository using MongoDB.
type DecisionRepository struct {
	col *mongo.Collection
}

// NewDecisionRepository creates a new DecisionRepository.
func NewDecisionRepository(db *mongo.Database) ports.DecisionRepository {
	return &DecisionRepository{col: db.Collection(decisionCollection)}
}

// InsertDecision persists a gate decision to the gate_decisions audit collection.
func (r *DecisionRepository) InsertDecision(ctx context.Context, d *domain.AuthorizationDecision) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"session_id":    d.SessionID,
		"route":         d.Route,
		"state":         string(d.State),
		"authenticated": d.Authenticated,
		"decided_at":    d.DecidedAt.UTC(),
	}
	if d.AccountType != "" {
		doc["account_type"] = d.AccountType
	}
	if d.TokenFingerprint != "" {
		doc["token_fingerprint"] = d.TokenFingerprint
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
