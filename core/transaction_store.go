package core

import "context"

// TransactionStore 是交易数据的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（recommend）实现
//   - 遵循依赖倒置原则：领域层定义接口，基础设施层实现接口
//   - 上游数据源（关系库的预聚合视图等）只需要适配到这一个接口
//
// 使用场景：
//   - Engine 构建交互矩阵时一次性拉取全量快照
//   - 引擎把客户群体视为一次计算内固定不变的输入快照
//
// 实现：
//   - recommend.StoreAdapter 实现此接口（基于 core.Store）
type TransactionStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// ListTransactions 拉取全部交互记录快照。
	// 返回的记录尚未聚合；聚合由矩阵构建负责。
	ListTransactions(ctx context.Context) ([]Transaction, error)

	// AllCustomers 获取所有客户 ID 列表
	AllCustomers(ctx context.Context) ([]string, error)

	// AllProducts 获取所有商品 ID 列表
	AllProducts(ctx context.Context) ([]string, error)
}
