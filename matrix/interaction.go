package matrix

import (
	"sort"

	"github.com/rushteam/retailcf/core"
)

// Interaction 是客户×商品交互矩阵，一次批量计算的只读产物。
//
// 构建规则：
//  1. 同一 (customer, product) 的多条记录按强度求和聚合
//  2. 缺失对显式填 0（不是 null/未定义）——向量数学要求每个分量都有值，
//     缺失值处理必须发生在相似度计算之前，而不是混在相似度步骤里
//  3. 行列维度在构建时固定为输入中出现的客户/商品集合；
//     全零行/列的客户/商品仍然占据一行/一列
//  4. 行列顺序按 ID 升序，保证重复构建结果完全一致
//
// 构建完成后矩阵不再被任何组件修改。
type Interaction struct {
	customers   []string // 行序（客户 ID 升序）
	products    []string // 列序（商品 ID 升序）
	customerIdx map[string]int
	productIdx  map[string]int
	rows        [][]float64
	nonZero     int
}

// BuildInteraction 把一批交互记录转换为交互矩阵。
//
// 错误：
//   - 记录为空时返回 core.ErrEmptyInput（矩阵形状无法确定）
//   - 任意一条记录强度为负/NaN 时返回 core.ErrInvalidRecord，整批终止
//
// 纯函数：无副作用，不持有 records 的引用。
func BuildInteraction(records []core.Transaction) (*Interaction, error) {
	if len(records) == 0 {
		return nil, core.ErrEmptyInput
	}

	// 聚合：strength[customer][product] = Σ strength
	agg := make(map[string]map[string]float64)
	productSet := make(map[string]struct{})
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
		row, ok := agg[rec.CustomerID]
		if !ok {
			row = make(map[string]float64)
			agg[rec.CustomerID] = row
		}
		row[rec.ProductID] += rec.Strength
		productSet[rec.ProductID] = struct{}{}
	}

	customers := make([]string, 0, len(agg))
	for id := range agg {
		customers = append(customers, id)
	}
	sort.Strings(customers)

	products := make([]string, 0, len(productSet))
	for id := range productSet {
		products = append(products, id)
	}
	sort.Strings(products)

	m := &Interaction{
		customers:   customers,
		products:    products,
		customerIdx: make(map[string]int, len(customers)),
		productIdx:  make(map[string]int, len(products)),
		rows:        make([][]float64, len(customers)),
	}
	for i, id := range customers {
		m.customerIdx[id] = i
	}
	for j, id := range products {
		m.productIdx[id] = j
	}

	// 稠密填充：make 出来的行天然是全 0，聚合值覆盖即可
	for i, customerID := range customers {
		row := make([]float64, len(products))
		for productID, strength := range agg[customerID] {
			j := m.productIdx[productID]
			row[j] = strength
			if strength > 0 {
				m.nonZero++
			}
		}
		m.rows[i] = row
	}

	return m, nil
}

// Dims 返回 (客户数, 商品数)。
func (m *Interaction) Dims() (int, int) {
	return len(m.customers), len(m.products)
}

// Customers 返回行序对应的客户 ID 列表（升序）。调用方不得修改。
func (m *Interaction) Customers() []string { return m.customers }

// Products 返回列序对应的商品 ID 列表（升序）。调用方不得修改。
func (m *Interaction) Products() []string { return m.products }

// CustomerIndex 返回客户的行索引。
func (m *Interaction) CustomerIndex(customerID string) (int, bool) {
	i, ok := m.customerIdx[customerID]
	return i, ok
}

// ProductIndex 返回商品的列索引。
func (m *Interaction) ProductIndex(productID string) (int, bool) {
	j, ok := m.productIdx[productID]
	return j, ok
}

// Row 返回第 i 行的强度向量。调用方不得修改。
func (m *Interaction) Row(i int) []float64 { return m.rows[i] }

// Strength 返回 (customer, product) 的聚合强度；任一 ID 未知时返回 0。
func (m *Interaction) Strength(customerID, productID string) float64 {
	i, ok := m.customerIdx[customerID]
	if !ok {
		return 0
	}
	j, ok := m.productIdx[productID]
	if !ok {
		return 0
	}
	return m.rows[i][j]
}

// NonZero 返回强度大于 0 的单元格数量。
func (m *Interaction) NonZero() int { return m.nonZero }

// Density 返回矩阵稠密度：非零单元格占比，范围 [0, 1]。
// 零售交互数据的稠密度通常很低，这个值用于监控/巡检。
func (m *Interaction) Density() float64 {
	c, p := m.Dims()
	if c == 0 || p == 0 {
		return 0
	}
	return float64(m.nonZero) / float64(c*p)
}
