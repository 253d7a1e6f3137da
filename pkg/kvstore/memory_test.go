package kvstore

import (
	"context"
	"testing"
)

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, err := m.Get(ctx, "recentMessages"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := m.Set(ctx, "recentMessages", `{"version":1,"entries":[]}`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	v, ok, err := m.Get(ctx, "recentMessages")
	if err != nil || !ok {
		t.Fatalf("expected stored key, got ok=%v err=%v", ok, err)
	}
	if v != `{"version":1,"entries":[]}` {
		t.Fatalf("unexpected value %q", v)
	}
}
