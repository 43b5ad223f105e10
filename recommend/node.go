package recommend

import (
	"context"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/pipeline"
	"github.com/rushteam/retailcf/pkg/conv"
	"github.com/rushteam/retailcf/pkg/utils"
)

// UserCFNode 把 Engine 包装成 Pipeline Node，使推荐生成可以和
// Filter/ReRank/PostProcess 节点串联。
//
// 使用示例：
//
//	p := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &recommend.UserCFNode{Engine: engine, TopN: 50},
//	        &filter.FilterNode{Filters: []filter.Filter{blacklist}},
//	        &rerank.TopNNode{N: 10},
//	    },
//	}
type UserCFNode struct {
	Engine *Engine

	// TopN 生成阶段的候选数量；<= 0 表示不截断。
	// 可被请求参数 rctx.Params["n"] 覆盖。
	TopN int
}

func (n *UserCFNode) Name() string {
	return "recommend.user_cf"
}

func (n *UserCFNode) Kind() pipeline.Kind {
	return pipeline.KindRecommend
}

// Process 忽略输入 recs（本节点是链路起点），按 rctx.CustomerID 生成候选。
// 无购买历史的客户得到空列表并在请求上打标，不中断链路。
func (n *UserCFNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	_ []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if n.Engine == nil || rctx == nil || rctx.CustomerID == "" {
		return nil, nil
	}

	topN := n.TopN
	if v := conv.ConfigGetInt64(rctx.Params, "n", 0); v > 0 {
		topN = int(v)
	}

	recs, err := n.Engine.Recommend(rctx.CustomerID, topN)
	if err != nil {
		if core.IsNoSimilarityData(err) {
			rctx.PutLabel("no_similarity_data", utils.Label{Value: "true", Source: "recommend"})
			return recs, nil
		}
		return nil, err
	}
	return recs, nil
}
