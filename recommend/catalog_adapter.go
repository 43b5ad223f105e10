package recommend

import (
	"context"
	"encoding/json"

	"github.com/rushteam/retailcf/core"
)

// CatalogStoreAdapter 是基于 core.KeyValueStore 的主数据适配器。
// 实现 core.CatalogStore 接口，用 Hash 存储商品/客户主数据：
// Hash key 为 {KeyPrefix}:products / {KeyPrefix}:customers，
// field 为实体 ID，value 为 JSON。
type CatalogStoreAdapter struct {
	store core.KeyValueStore

	// KeyPrefix 是存储 key 的前缀
	KeyPrefix string
}

// NewCatalogStoreAdapter 创建一个主数据适配器。
func NewCatalogStoreAdapter(s core.KeyValueStore, keyPrefix string) *CatalogStoreAdapter {
	if keyPrefix == "" {
		keyPrefix = "retailcf:catalog"
	}
	return &CatalogStoreAdapter{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

// Name 实现 core.CatalogStore 接口
func (a *CatalogStoreAdapter) Name() string {
	return "store_catalog_adapter"
}

func (a *CatalogStoreAdapter) GetProduct(ctx context.Context, productID string) (*core.Product, error) {
	data, err := a.store.HGet(ctx, a.KeyPrefix+":products", productID)
	if err != nil {
		return nil, err
	}
	var p core.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *CatalogStoreAdapter) GetCustomer(ctx context.Context, customerID string) (*core.Customer, error) {
	data, err := a.store.HGet(ctx, a.KeyPrefix+":customers", customerID)
	if err != nil {
		return nil, err
	}
	var c core.Customer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CatalogStoreAdapter) BatchGetProducts(ctx context.Context, productIDs []string) (map[string]*core.Product, error) {
	all, err := a.store.HGetAll(ctx, a.KeyPrefix+":products")
	if err != nil {
		return nil, err
	}

	result := make(map[string]*core.Product, len(productIDs))
	for _, id := range productIDs {
		data, ok := all[id]
		if !ok {
			continue // 缺失的主数据跳过，不视为错误
		}
		var p core.Product
		if err := json.Unmarshal(data, &p); err != nil {
			continue
		}
		result[id] = &p
	}
	return result, nil
}

// 确保实现 core.CatalogStore 接口
var _ core.CatalogStore = (*CatalogStoreAdapter)(nil)

// SeedCatalog 辅助函数：把商品/客户主数据写入 Store，供测试/演示使用。
func SeedCatalog(ctx context.Context, adapter *CatalogStoreAdapter, products []core.Product, customers []core.Customer) error {
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if err := adapter.store.HSet(ctx, adapter.KeyPrefix+":products", p.Key, data); err != nil {
			return err
		}
	}
	for _, c := range customers {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}
		if err := adapter.store.HSet(ctx, adapter.KeyPrefix+":customers", c.Key, data); err != nil {
			return err
		}
	}
	return nil
}
