package dsl

import (
	"testing"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/pkg/utils"
)

func buildEval() *Eval {
	rec := core.NewRecommendation("P100")
	rec.Score = 0.85
	rec.PutLabel("source", utils.Label{Value: "user_cf", Source: "recommend"})
	rec.PutLabel("catalog", utils.Label{Value: "enriched", Source: "postprocess"})

	rctx := &core.RecommendContext{CustomerID: "C1", Scene: "home"}
	return NewEval(rec, rctx)
}

func TestEval_Evaluate(t *testing.T) {
	e := buildEval()

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"empty expr is true", ``, true},
		{"score compare", `rec.score > 0.5`, true},
		{"score compare false", `rec.score > 0.9`, false},
		{"product id", `rec.product_id == "P100"`, true},
		{"label accessor", `label.source == "user_cf"`, true},
		{"label contains", `label.source.contains("cf")`, true},
		{"logic and", `label.source == "user_cf" && rec.score > 0.8`, true},
		{"rctx scene", `rctx.scene == "home"`, true},
		{"rctx customer", `rctx.customer_id == "C1"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEval_Errors(t *testing.T) {
	e := buildEval()

	tests := []struct {
		name string
		expr string
	}{
		{"syntax error", `rec.score >`},
		{"non-boolean result", `rec.score`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Evaluate(tt.expr); err == nil {
				t.Errorf("Evaluate(%q) error = nil, want error", tt.expr)
			}
		})
	}
}
