package config

import (
	"fmt"

	"github.com/rushteam/retailcf/filter"
	"github.com/rushteam/retailcf/pipeline"
	"github.com/rushteam/retailcf/pkg/conv"
	"github.com/rushteam/retailcf/rerank"
)

// DefaultFactory 返回一个包含所有内置 Node 的默认工厂。
//
// 注意：recommend.user_cf 和 postprocess.catalog 依赖运行中的
// Engine/CatalogStore 实例，无法从纯配置构建，需要在代码中创建后
// 与配置驱动的节点组合（见 examples/pipeline）。
func DefaultFactory() *pipeline.NodeFactory {
	factory := pipeline.NewNodeFactory()

	// 注册 ReRank Nodes
	factory.Register("rerank.topn", buildTopNNode)

	// 注册 Filter Nodes
	factory.Register("filter", buildFilterNode)

	return factory
}

func buildTopNNode(config map[string]interface{}) (pipeline.Node, error) {
	n := conv.ConfigGetInt64(config, "n", 0)
	return &rerank.TopNNode{N: int(n)}, nil
}

func buildFilterNode(config map[string]interface{}) (pipeline.Node, error) {
	filtersConfig, ok := config["filters"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}

	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		filterType := conv.ConfigGet[string](filterMap, "type", "")
		switch filterType {
		case "blacklist":
			ids := conv.SliceAnyToString(filterMap["product_ids"])
			if ids == nil {
				ids = []string{}
			}
			filters = append(filters, &filter.BlacklistFilter{ProductIDs: ids})
		case "dsl":
			expr := conv.ConfigGet[string](filterMap, "expr", "")
			if expr == "" {
				return nil, fmt.Errorf("dsl filter: expr not found")
			}
			filters = append(filters, &filter.DSLFilter{Expr: expr})
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}

	return &filter.FilterNode{Filters: filters}, nil
}
