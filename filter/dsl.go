package filter

import (
	"context"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/pkg/dsl"
)

// DSLFilter 是规则过滤器：用 CEL 表达式描述"保留条件"。
// 表达式求值为 false 的推荐被过滤掉；求值出错时保留（规则失效不清空结果）。
//
// 示例：
//
//	f := &filter.DSLFilter{Expr: `rec.score > 0.5`}
type DSLFilter struct {
	// Expr 是 CEL 保留条件表达式；为空表示全部保留
	Expr string
}

func (f *DSLFilter) Name() string {
	return "filter.dsl"
}

func (f *DSLFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	rec *core.Recommendation,
) (bool, error) {
	if rec == nil {
		return true, nil
	}
	if f.Expr == "" {
		return false, nil
	}

	keep, err := dsl.NewEval(rec, rctx).Evaluate(f.Expr)
	if err != nil {
		return false, err
	}
	return !keep, nil
}
