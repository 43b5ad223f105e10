package matrix

import (
	"encoding/json"
	"math"

	"github.com/rushteam/retailcf/core"
)

// Triplet 是稀疏三元组编码中的一个非零单元：(行 ID, 列 ID, 值)。
type Triplet struct {
	Row   string  `json:"r"`
	Col   string  `json:"c"`
	Value float64 `json:"v"`
}

// TripletMatrix 是矩阵的稀疏三元组编码，带显式维度头。
// 用于缓存/巡检场景的序列化；引擎内部不使用这种表示。
//
// 约定：
//   - Rows/Cols 记录完整的行列 ID 序（保留全零行/列的形状信息）
//   - Entries 只包含非零单元，缺失单元解码时回填 0
//   - 对相似度矩阵：范数非零的行对角线恒为 1.0，必然出现在 Entries 中，
//     因此"行 ID 在 Rows 中但对角线缺失"即可还原未定义行
type TripletMatrix struct {
	Rows    []string  `json:"rows"`
	Cols    []string  `json:"cols"`
	Entries []Triplet `json:"entries"`
}

// EncodeInteraction 把交互矩阵编码为稀疏三元组 JSON。
func EncodeInteraction(m *Interaction) ([]byte, error) {
	tm := TripletMatrix{
		Rows:    m.Customers(),
		Cols:    m.Products(),
		Entries: make([]Triplet, 0, m.NonZero()),
	}
	for i, customerID := range m.Customers() {
		row := m.Row(i)
		for j, v := range row {
			if v != 0 {
				tm.Entries = append(tm.Entries, Triplet{Row: customerID, Col: m.Products()[j], Value: v})
			}
		}
	}
	return json.Marshal(tm)
}

// DecodeInteraction 从稀疏三元组 JSON 还原交互矩阵。
// 编码中出现未知行/列 ID 或负值时返回 core.ErrInvalidRecord。
func DecodeInteraction(data []byte) (*Interaction, error) {
	var tm TripletMatrix
	if err := json.Unmarshal(data, &tm); err != nil {
		return nil, err
	}
	if len(tm.Rows) == 0 || len(tm.Cols) == 0 {
		return nil, core.ErrEmptyInput
	}

	m := &Interaction{
		customers:   tm.Rows,
		products:    tm.Cols,
		customerIdx: make(map[string]int, len(tm.Rows)),
		productIdx:  make(map[string]int, len(tm.Cols)),
		rows:        make([][]float64, len(tm.Rows)),
	}
	for i, id := range tm.Rows {
		m.customerIdx[id] = i
	}
	for j, id := range tm.Cols {
		m.productIdx[id] = j
	}
	for i := range m.rows {
		m.rows[i] = make([]float64, len(tm.Cols))
	}

	for _, e := range tm.Entries {
		i, ok := m.customerIdx[e.Row]
		if !ok {
			return nil, core.ErrInvalidRecord
		}
		j, ok := m.productIdx[e.Col]
		if !ok {
			return nil, core.ErrInvalidRecord
		}
		if e.Value < 0 {
			return nil, core.ErrInvalidRecord
		}
		m.rows[i][j] = e.Value
		if e.Value > 0 {
			m.nonZero++
		}
	}
	return m, nil
}

// EncodeSimilarity 把相似度矩阵编码为稀疏三元组 JSON。
// 只编码已定义且非零的单元；未定义行通过对角线缺失还原。
func EncodeSimilarity(s *Similarity) ([]byte, error) {
	customers := s.Customers()
	tm := TripletMatrix{
		Rows:    customers,
		Cols:    customers,
		Entries: make([]Triplet, 0, len(customers)),
	}
	for i, rowID := range customers {
		for j, colID := range customers {
			v, defined := s.At(i, j)
			if defined && v != 0 {
				tm.Entries = append(tm.Entries, Triplet{Row: rowID, Col: colID, Value: v})
			}
		}
	}
	return json.Marshal(tm)
}

// DecodeSimilarity 从稀疏三元组 JSON 还原相似度矩阵。
func DecodeSimilarity(data []byte) (*Similarity, error) {
	var tm TripletMatrix
	if err := json.Unmarshal(data, &tm); err != nil {
		return nil, err
	}
	n := len(tm.Rows)

	s := &Similarity{
		customers:   tm.Rows,
		customerIdx: make(map[string]int, n),
		vals:        make([][]float64, n),
	}
	for i, id := range tm.Rows {
		s.customerIdx[id] = i
	}
	for i := range s.vals {
		s.vals[i] = make([]float64, n)
	}

	for _, e := range tm.Entries {
		i, ok := s.customerIdx[e.Row]
		if !ok {
			return nil, core.ErrInvalidRecord
		}
		j, ok := s.customerIdx[e.Col]
		if !ok {
			return nil, core.ErrInvalidRecord
		}
		s.vals[i][j] = e.Value
	}

	// 对角线缺失（仍为默认 0）的行整行还原为未定义
	for i := 0; i < n; i++ {
		if s.vals[i][i] == 0 {
			markUndefinedRow(s, i)
		}
	}
	return s, nil
}

func markUndefinedRow(s *Similarity, i int) {
	n := len(s.customers)
	for j := 0; j < n; j++ {
		s.vals[i][j] = math.NaN()
		s.vals[j][i] = math.NaN()
	}
}
