package store

import (
	"bytes"
	"context"
	"testing"

	"github.com/rushteam/retailcf/core"
)

func TestMemoryStore_GetSet(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) error = %v, want store not found", err)
	}

	if err := s.Set(ctx, "k1", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("Get(k1) = %q, want v1", got)
	}

	if err := s.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "k1"); !core.IsStoreNotFound(err) {
		t.Errorf("Get() after Delete error = %v, want store not found", err)
	}
}

func TestMemoryStore_Batch(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	kvs := map[string][]byte{
		"k1": []byte("v1"),
		"k2": []byte("v2"),
	}
	if err := s.BatchSet(ctx, kvs); err != nil {
		t.Fatalf("BatchSet() error = %v", err)
	}

	got, err := s.BatchGet(ctx, []string{"k1", "k2", "missing"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("BatchGet() returned %d entries, want 2 (missing keys skipped)", len(got))
	}
}

func TestMemoryStore_ZSet(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	s.ZAdd(ctx, "rank", 0.3, "b")
	s.ZAdd(ctx, "rank", 0.9, "a")
	s.ZAdd(ctx, "rank", 0.1, "c")

	members, err := s.ZRange(ctx, "rank", 0, 1)
	if err != nil {
		t.Fatalf("ZRange() error = %v", err)
	}
	if len(members) != 2 || members[0] != "a" || members[1] != "b" {
		t.Errorf("ZRange(0, 1) = %v, want [a b] (score desc)", members)
	}

	score, err := s.ZScore(ctx, "rank", "a")
	if err != nil {
		t.Fatalf("ZScore() error = %v", err)
	}
	if score != 0.9 {
		t.Errorf("ZScore(a) = %v, want 0.9", score)
	}
	if _, err := s.ZScore(ctx, "rank", "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("ZScore(missing) error = %v, want store not found", err)
	}
}

func TestMemoryStore_Hash(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	s.HSet(ctx, "h", "f1", []byte("v1"))
	s.HSet(ctx, "h", "f2", []byte("v2"))

	got, err := s.HGet(ctx, "h", "f1")
	if err != nil {
		t.Fatalf("HGet() error = %v", err)
	}
	if !bytes.Equal(got, []byte("v1")) {
		t.Errorf("HGet(h, f1) = %q, want v1", got)
	}

	all, err := s.HGetAll(ctx, "h")
	if err != nil {
		t.Fatalf("HGetAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("HGetAll() returned %d fields, want 2", len(all))
	}
	if _, err := s.HGet(ctx, "h", "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("HGet(missing) error = %v, want store not found", err)
	}
}
