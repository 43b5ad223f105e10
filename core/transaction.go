package core

import "math"

// Transaction 是一条聚合前的客户-商品交互记录。
// Strength 是非负的消费强度（购买数量、购买次数等）；
// 同一 (customer, product) 的多条记录在矩阵构建时按求和聚合。
//
// 输入契约：上游数据治理已经把客户群体限定在目标零售客群
// （企业客户在进入引擎之前被剔除），引擎本身不做客群过滤。
type Transaction struct {
	CustomerID string  // 客户 ID（矩阵行索引的稳定键）
	ProductID  string  // 商品 ID（矩阵列索引的稳定键）
	Strength   float64 // 交互强度，必须 >= 0
}

// Validate 校验记录是否满足输入契约。
// 强度为负数或 NaN 属于调用方契约违规，返回 ErrInvalidRecord。
func (t Transaction) Validate() error {
	if t.Strength < 0 || math.IsNaN(t.Strength) {
		return ErrInvalidRecord
	}
	return nil
}
