package core

import "github.com/rushteam/retailcf/pkg/utils"

// RecommendContext 承载一次推荐请求的目标客户/场景信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	CustomerID string // 目标客户 ID（使用 string 类型，支持所有 ID 格式）
	Scene      string

	// Labels 是请求级标签，可驱动整个 Pipeline 行为
	// 例如：新客户、高频客户等
	Labels map[string]utils.Label

	// Params 请求级上下文参数（如 n、max_neighbors 的覆盖值）
	Params map[string]any
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
