package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/pipeline"
)

const pipelineYAML = `
pipeline:
  name: "retail_home"
  nodes:
    - type: "filter"
      config:
        filters:
          - type: "blacklist"
            product_ids: ["p2"]
          - type: "dsl"
            expr: "rec.score > 0.1"
    - type: "rerank.topn"
      config:
        n: 2
`

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func rec(productID string, score float64) *core.Recommendation {
	r := core.NewRecommendation(productID)
	r.Score = score
	return r
}

func TestDefaultFactory_BuildAndRun(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeTempYAML(t, pipelineYAML))
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if cfg.Pipeline.Name != "retail_home" {
		t.Errorf("Pipeline.Name = %q, want retail_home", cfg.Pipeline.Name)
	}

	p, err := cfg.BuildPipeline(DefaultFactory())
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}
	if len(p.Nodes) != 2 {
		t.Fatalf("BuildPipeline() built %d nodes, want 2", len(p.Nodes))
	}

	recs := []*core.Recommendation{
		rec("p1", 0.9),
		rec("p2", 0.8),  // blacklist
		rec("p3", 0.7),
		rec("p4", 0.6),  // topn cut
		rec("p5", 0.05), // dsl cut
	}
	out, err := p.Run(context.Background(), &core.RecommendContext{CustomerID: "c1"}, recs)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out) != 2 || out[0].ProductID != "p1" || out[1].ProductID != "p3" {
		t.Fatalf("Run() = %v, want [p1 p3]", out)
	}
}

func TestDefaultFactory_UnknownNodeType(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeTempYAML(t, `
pipeline:
  name: "broken"
  nodes:
    - type: "no.such.node"
      config: {}
`))
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if _, err := cfg.BuildPipeline(DefaultFactory()); err == nil {
		t.Error("BuildPipeline() error = nil, want unknown node type error")
	}
}

func TestDefaultFactory_UnknownFilterType(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeTempYAML(t, `
pipeline:
  name: "broken"
  nodes:
    - type: "filter"
      config:
        filters:
          - type: "no_such"
`))
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if _, err := cfg.BuildPipeline(DefaultFactory()); err == nil {
		t.Error("BuildPipeline() error = nil, want unknown filter type error")
	}
}
