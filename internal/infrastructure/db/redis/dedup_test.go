package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

func TestDecisionDedup(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	dedup := NewDecisionDedup(client, 30*time.Second)
	d := domain.AuthorizationDecision{SessionID: "sid", Route: "/admin/clients", State: domain.StateUnauthorized}

	dup, err := dedup.IsDuplicate(ctx, d)
	if err != nil || dup {
		t.Fatalf("fresh decision reported as duplicate: %v, %v", dup, err)
	}

	if err := dedup.Mark(ctx, d); err != nil {
		t.Fatalf("Mark error: %v", err)
	}
	if !mr.Exists("dedup:gate:sid:unauthorized:/admin/clients") {
		t.Fatalf("dedup key not written")
	}

	if dup, _ := dedup.IsDuplicate(ctx, d); !dup {
		t.Fatalf("expected duplicate within window")
	}

	other := d
	other.Route = "/admin/billing"
	if dup, _ := dedup.IsDuplicate(ctx, other); dup {
		t.Fatalf("different route must not be a duplicate")
	}

	mr.FastForward(31 * time.Second)
	if dup, _ := dedup.IsDuplicate(ctx, d); dup {
		t.Fatalf("expected key to expire after the window")
	}
}

func TestDecisionDedup_DefaultWindow(t *testing.T) {
	if d := NewDecisionDedup(nil, 0); d.window != time.Minute {
		t.Fatalf("unexpected default window %v", d.window)
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("Connect error: %v", err)
	}
	_ = client.Close()

	addr := mr.Addr()
	mr.Close()
	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: time.Second}); err == nil {
		t.Fatalf("expected error for unreachable redis")
	}
}
