package pipeline

import (
	"context"

	"github.com/rushteam/retailcf/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindRecommend   Kind = "recommend"   // 推荐阶段：从相似客户生成候选商品
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合约束的候选
	KindReRank      Kind = "rerank"      // 重排阶段：截断/业务调优
	KindPostProcess Kind = "postprocess" // 后处理阶段：补充主数据或最终结果修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 recommendations -> 输出 recommendations”的形态，
// 方便推荐生成、Filter 截断、PostProcess 补全等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		recs []*core.Recommendation,
	) ([]*core.Recommendation, error)
}
