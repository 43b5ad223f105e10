package recommend

import (
	"context"
	"testing"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/store"
)

func TestCatalogEnrichNode(t *testing.T) {
	memStore := store.NewMemoryStore()
	defer memStore.Close()
	adapter := NewCatalogStoreAdapter(memStore, "cat")
	err := SeedCatalog(context.Background(), adapter, []core.Product{
		{Key: "p1", Name: "Espresso Maker"},
	}, nil)
	if err != nil {
		t.Fatalf("SeedCatalog() error = %v", err)
	}

	node := &CatalogEnrichNode{Catalog: adapter}
	recs := []*core.Recommendation{
		core.NewRecommendation("p1"),
		core.NewRecommendation("p2"), // no master data
	}
	recs[0].Score = 0.9
	recs[1].Score = 0.5

	out, err := node.Process(context.Background(), &core.RecommendContext{CustomerID: "c1"}, recs)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Process() returned %d recs, want 2", len(out))
	}

	if got := out[0].Meta["product_name"]; got != "Espresso Maker" {
		t.Errorf("out[0].Meta[product_name] = %v, want Espresso Maker", got)
	}
	if label, ok := out[0].Labels["catalog"]; !ok || label.Value != "enriched" {
		t.Errorf("out[0].Labels[catalog] = %v, want enriched", label)
	}

	// missing master data passes through untouched
	if _, ok := out[1].Meta["product_name"]; ok {
		t.Error("out[1] enriched despite missing master data")
	}
}

func TestCatalogEnrichNode_NilCatalog(t *testing.T) {
	node := &CatalogEnrichNode{}
	recs := []*core.Recommendation{core.NewRecommendation("p1")}

	out, err := node.Process(context.Background(), &core.RecommendContext{CustomerID: "c1"}, recs)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 {
		t.Errorf("Process() with nil catalog returned %d recs, want pass-through", len(out))
	}
}
