package recommend

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/rushteam/retailcf/core"
)

// StoreAdapter 是基于 core.Store 接口的交易数据适配器。
// 实现 core.TransactionStore 接口，从 Redis/内存等存储中读取
// 上游数据源落好的交互记录快照。
type StoreAdapter struct {
	store core.Store

	// KeyPrefix 是存储 key 的前缀
	// 交互记录快照：{KeyPrefix}:transactions
	// 所有客户列表：{KeyPrefix}:customers
	// 所有商品列表：{KeyPrefix}:products
	KeyPrefix string
}

// NewStoreAdapter 创建一个基于 core.Store 的交易数据适配器。
func NewStoreAdapter(s core.Store, keyPrefix string) *StoreAdapter {
	if keyPrefix == "" {
		keyPrefix = "retailcf"
	}
	return &StoreAdapter{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

// Name 实现 core.TransactionStore 接口
func (a *StoreAdapter) Name() string {
	return "store_tx_adapter"
}

func (a *StoreAdapter) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	key := a.KeyPrefix + ":transactions"
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []core.Transaction{}, nil
		}
		return nil, err
	}

	var result []core.Transaction
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *StoreAdapter) AllCustomers(ctx context.Context) ([]string, error) {
	return a.listIDs(ctx, a.KeyPrefix+":customers")
}

func (a *StoreAdapter) AllProducts(ctx context.Context) ([]string, error) {
	return a.listIDs(ctx, a.KeyPrefix+":products")
}

func (a *StoreAdapter) listIDs(ctx context.Context, key string) ([]string, error) {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var result []string
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// 确保实现 core.TransactionStore 接口
var _ core.TransactionStore = (*StoreAdapter)(nil)

// SeedTransactions 辅助函数：把一批交互记录写入 Store。
// 使用 StoreAdapter + MemoryStore 时，可以用这个函数方便地准备测试/演示数据。
// 同时维护客户/商品清单 key（ID 升序）。
func SeedTransactions(ctx context.Context, adapter *StoreAdapter, records []core.Transaction) error {
	customerSet := make(map[string]struct{})
	productSet := make(map[string]struct{})
	for _, rec := range records {
		customerSet[rec.CustomerID] = struct{}{}
		productSet[rec.ProductID] = struct{}{}
	}

	txData, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := adapter.store.Set(ctx, adapter.KeyPrefix+":transactions", txData); err != nil {
		return err
	}

	customers := make([]string, 0, len(customerSet))
	for id := range customerSet {
		customers = append(customers, id)
	}
	sort.Strings(customers)
	customerData, err := json.Marshal(customers)
	if err != nil {
		return err
	}
	if err := adapter.store.Set(ctx, adapter.KeyPrefix+":customers", customerData); err != nil {
		return err
	}

	products := make([]string, 0, len(productSet))
	for id := range productSet {
		products = append(products, id)
	}
	sort.Strings(products)
	productData, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return adapter.store.Set(ctx, adapter.KeyPrefix+":products", productData)
}
