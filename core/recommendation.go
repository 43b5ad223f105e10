package core

import "github.com/rushteam/retailcf/pkg/utils"

// Recommendation 是推荐链路中的统一承载结构：分数、元信息、标签。
// Labels 用于解释与策略驱动；Score 用于排序决策。
// Score 是相似度加权的邻居消费强度之和，排序取决于它。
type Recommendation struct {
	ProductID string
	Score     float64
	Meta      map[string]any
	Labels    map[string]utils.Label
}

func NewRecommendation(productID string) *Recommendation {
	return &Recommendation{
		ProductID: productID,
		Score:     0,
		Meta:      make(map[string]any),
		Labels:    make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (rec *Recommendation) PutLabel(key string, lbl utils.Label) {
	if rec.Labels == nil {
		rec.Labels = make(map[string]utils.Label)
	}
	if old, ok := rec.Labels[key]; ok {
		rec.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rec.Labels[key] = lbl
}

// Neighbor 是一个相似客户条目：客户 ID 与相似度分数。
// 用于"相似客户"查询的输出；Similarity 总是已定义的值（[0,1]）。
type Neighbor struct {
	CustomerID string
	Similarity float64
}
