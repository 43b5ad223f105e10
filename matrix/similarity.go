package matrix

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Similarity 是客户×客户余弦相似度矩阵，对称、只读。
//
// 数值语义：
//   - 交互强度非负，所以已定义的相似度全部落在 [0, 1]
//   - 行向量范数非零的客户，对角线恰好等于 1.0
//   - 任一侧为全零行（无购买历史）的配对没有定义——
//     显式用 NaN 哨兵表示"数据不足"，绝不折算成 0 或 1。
//     0 是两个不相交但非零购买向量的合法结果，
//     把"没有数据"混进"没有重叠"会污染下游排序。
//
// 未定义值在加权打分中按零贡献处理（"无证据"而非"负证据"）。
type Similarity struct {
	customers   []string
	customerIdx map[string]int
	vals        [][]float64 // NaN 表示未定义
}

// ComputeSimilarity 对交互矩阵的行向量两两计算余弦相似度。
//
// 算法：
//  1. 预计算每行的范数与非零列索引
//  2. 只计算上三角（含对角线），镜像赋值到下三角——
//     一个无序对只算一次，对称性是精确的而不是浮点意义上的近似
//  3. 点积只遍历目标行的非零列（利用稀疏性，避免全量稠密乘）
//
// 复杂度 O(C²·P̂)，P̂ 为行均非零列数。
func ComputeSimilarity(m *Interaction) *Similarity {
	s, _ := computeSimilarity(context.Background(), m, 1)
	return s
}

// ComputeSimilarityParallel 是 ComputeSimilarity 的并行版本。
// 行两两配对的计算天然可按行块拆分：每个 worker 负责一段行的上三角单元，
// 对交互矩阵只读，对输出矩阵写入互不相交的单元格，无需加锁。
// workers <= 0 时退化为单 worker。
// ctx 取消时在行边界放弃计算并返回 ctx.Err()。
func ComputeSimilarityParallel(ctx context.Context, m *Interaction, workers int) (*Similarity, error) {
	if workers <= 0 {
		workers = 1
	}
	return computeSimilarity(ctx, m, workers)
}

func computeSimilarity(ctx context.Context, m *Interaction, workers int) (*Similarity, error) {
	n, _ := m.Dims()

	s := &Similarity{
		customers:   m.Customers(),
		customerIdx: make(map[string]int, n),
		vals:        make([][]float64, n),
	}
	for i, id := range s.customers {
		s.customerIdx[id] = i
	}
	for i := range s.vals {
		s.vals[i] = make([]float64, n)
	}

	// 预计算范数与每行非零列索引
	norms := make([]float64, n)
	nzCols := make([][]int, n)
	for i := 0; i < n; i++ {
		row := m.Row(i)
		var sum float64
		cols := make([]int, 0, 8)
		for j, v := range row {
			if v != 0 {
				sum += v * v
				cols = append(cols, j)
			}
		}
		norms[i] = math.Sqrt(sum)
		nzCols[i] = cols
	}

	// 行级并行：第 i 个任务负责 (i, j>=i) 的上三角单元及其镜像
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			s.computeRow(m, i, norms, nzCols[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// computeRow 填充第 i 行的上三角单元 (i, j>=i)，并镜像到 (j, i)。
func (s *Similarity) computeRow(m *Interaction, i int, norms []float64, cols []int) {
	n := len(s.customers)
	rowI := m.Row(i)

	if norms[i] == 0 {
		// 全零行：整行（含对角线）未定义
		for j := i; j < n; j++ {
			s.vals[i][j] = math.NaN()
			s.vals[j][i] = math.NaN()
		}
		return
	}

	s.vals[i][i] = 1.0
	for j := i + 1; j < n; j++ {
		if norms[j] == 0 {
			s.vals[i][j] = math.NaN()
			s.vals[j][i] = math.NaN()
			continue
		}
		rowJ := m.Row(j)
		var dot float64
		for _, c := range cols {
			dot += rowI[c] * rowJ[c]
		}
		sim := dot / (norms[i] * norms[j])
		s.vals[i][j] = sim
		s.vals[j][i] = sim
	}
}

// Dim 返回矩阵边长（客户数）。
func (s *Similarity) Dim() int { return len(s.customers) }

// Customers 返回行/列序对应的客户 ID 列表。调用方不得修改。
func (s *Similarity) Customers() []string { return s.customers }

// CustomerIndex 返回客户的行索引。
func (s *Similarity) CustomerIndex(customerID string) (int, bool) {
	i, ok := s.customerIdx[customerID]
	return i, ok
}

// At 返回 (i, j) 的相似度。第二个返回值为 false 表示该配对未定义。
func (s *Similarity) At(i, j int) (float64, bool) {
	v := s.vals[i][j]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Value 按客户 ID 返回相似度。任一客户未知或配对未定义时返回 (0, false)。
func (s *Similarity) Value(customerA, customerB string) (float64, bool) {
	i, ok := s.customerIdx[customerA]
	if !ok {
		return 0, false
	}
	j, ok := s.customerIdx[customerB]
	if !ok {
		return 0, false
	}
	return s.At(i, j)
}

// HasData 报告客户的相似度行是否存在已定义条目。
// 行向量范数非零 ⇔ 对角线已定义 ⇔ 整行可用。
func (s *Similarity) HasData(customerID string) bool {
	i, ok := s.customerIdx[customerID]
	if !ok {
		return false
	}
	_, defined := s.At(i, i)
	return defined
}
