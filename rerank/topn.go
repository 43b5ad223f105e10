package rerank

import (
	"context"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在过滤后截取前 N 条推荐。
// 推荐生成阶段已经按分数降序排好，这里只做数量控制。
//
// 使用场景：
//   - 过滤后只返回 Top 3/5/10 条结果
//   - 生成阶段放宽候选量，给过滤器留余量，最后统一截断
//
// 示例：
//
//	p := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &recommend.UserCFNode{Engine: engine, TopN: 50},
//	        &filter.FilterNode{...},
//	        &rerank.TopNNode{N: 10},
//	    },
//	}
type TopNNode struct {
	// N 要保留的推荐数量（Top N）
	// 如果 N <= 0，则返回所有推荐（不截断）
	// 如果 N > len(recs)，则返回所有推荐
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	recs []*core.Recommendation,
) ([]*core.Recommendation, error) {
	// 如果 N <= 0，不截断，返回所有推荐
	if n.N <= 0 {
		return recs, nil
	}

	if len(recs) <= n.N {
		return recs, nil
	}

	return recs[:n.N], nil
}
