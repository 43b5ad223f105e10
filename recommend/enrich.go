package recommend

import (
	"context"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/pipeline"
	"github.com/rushteam/retailcf/pkg/utils"
)

// CatalogEnrichNode 是后处理节点：把商品名称等主数据补充进推荐结果，
// 供展示层直接使用（上游视图给的是 ProductKey，展示要的是名称）。
type CatalogEnrichNode struct {
	Catalog core.CatalogStore

	// MetaKey 写入 rec.Meta 的商品名称字段，默认 "product_name"
	MetaKey string
}

func (n *CatalogEnrichNode) Name() string {
	return "postprocess.catalog"
}

func (n *CatalogEnrichNode) Kind() pipeline.Kind {
	return pipeline.KindPostProcess
}

func (n *CatalogEnrichNode) Process(
	ctx context.Context,
	_ *core.RecommendContext,
	recs []*core.Recommendation,
) ([]*core.Recommendation, error) {
	if n.Catalog == nil || len(recs) == 0 {
		return recs, nil
	}

	metaKey := n.MetaKey
	if metaKey == "" {
		metaKey = "product_name"
	}

	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ProductID)
	}

	products, err := n.Catalog.BatchGetProducts(ctx, ids)
	if err != nil {
		// 主数据不可用不影响推荐本身，结果原样透传
		return recs, nil
	}

	for _, rec := range recs {
		p, ok := products[rec.ProductID]
		if !ok {
			continue
		}
		if rec.Meta == nil {
			rec.Meta = make(map[string]any)
		}
		rec.Meta[metaKey] = p.Name
		rec.PutLabel("catalog", utils.Label{Value: "enriched", Source: "postprocess"})
	}
	return recs, nil
}
