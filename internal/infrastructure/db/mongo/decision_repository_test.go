package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

func TestDecisionRepository_InsertDecision(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	decision := &domain.AuthorizationDecision{
		SessionID:        "sid",
		Route:            "/admin/clients",
		State:            domain.StateUnauthorized,
		AccountType:      "premium",
		TokenFingerprint: "abc123",
		Authenticated:    true,
		DecidedAt:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mt.Run("success", func(mt *mtest.T) {
		repo := NewDecisionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := repo.InsertDecision(context.Background(), decision); err != nil {
			t.Fatalf("InsertDecision error: %v", err)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "insert" {
			t.Fatalf("expected insert command, got %+v", started)
		}
		docs, ok := started.Command.Lookup("documents").ArrayOK()
		if !ok {
			t.Fatalf("insert command carries no documents")
		}
		values, _ := docs.Values()
		if len(values) != 1 {
			t.Fatalf("expected one document, got %d", len(values))
		}
		doc := values[0].Document()
		if doc.Lookup("route").StringValue() != "/admin/clients" {
			t.Fatalf("unexpected route in %v", doc)
		}
		if doc.Lookup("token_fingerprint").StringValue() != "abc123" {
			t.Fatalf("unexpected fingerprint in %v", doc)
		}
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := NewDecisionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		if err := repo.InsertDecision(context.Background(), decision); err == nil {
			t.Fatalf("expected error")
		}
	})

	mt.Run("omits empty optional fields", func(mt *mtest.T) {
		repo := NewDecisionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		bare := &domain.AuthorizationDecision{SessionID: "sid", Route: "/admin", State: domain.StateUnauthorized}
		if err := repo.InsertDecision(context.Background(), bare); err != nil {
			t.Fatalf("InsertDecision error: %v", err)
		}
		docs, _ := mt.GetStartedEvent().Command.Lookup("documents").ArrayOK()
		values, _ := docs.Values()
		doc := values[0].Document()
		if _, err := doc.LookupErr("account_type"); err == nil {
			t.Fatalf("account_type should be omitted")
		}
		if _, err := doc.LookupErr("token_fingerprint"); err == nil {
			t.Fatalf("token_fingerprint should be omitted")
		}
	})
}
