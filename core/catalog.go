package core

import "context"

// Customer 是客户主数据（来自上游维表，只读）。
// 引擎只依赖 Key；其余字段用于结果展示/解释。
type Customer struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
}

// Product 是商品主数据（来自上游维表，只读）。
type Product struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// CatalogStore 是主数据的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（recommend）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//
// 使用场景：
//   - 推荐结果补充商品名称（PostProcess 阶段）
//   - 相似客户列表补充客户信息
//
// 实现：
//   - recommend.CatalogStoreAdapter 实现此接口（基于 core.KeyValueStore）
type CatalogStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// GetProduct 获取单个商品主数据；不存在时返回 NOT_FOUND
	GetProduct(ctx context.Context, productID string) (*Product, error)

	// GetCustomer 获取单个客户主数据；不存在时返回 NOT_FOUND
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)

	// BatchGetProducts 批量获取商品主数据，缺失的 key 被跳过
	BatchGetProducts(ctx context.Context, productIDs []string) (map[string]*Product, error)
}
