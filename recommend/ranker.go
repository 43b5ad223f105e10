package recommend

import (
	"sort"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/matrix"
	"github.com/rushteam/retailcf/pkg/utils"
)

// UserCF 是基于用户的协同过滤排序器（User-based Collaborative Filtering）。
//
// 核心思想："购买模式相似的客户，会买相似的商品"
//
// 算法流程：
//  1. 目标客户 → 交互矩阵中的行向量
//  2. 取相似度矩阵中目标客户对每个其他客户的余弦相似度
//  3. 对目标客户未购买的每个候选商品，累加 相似度 × 邻居消费强度
//  4. 按分数降序（同分按商品 ID 升序）截取 TopN
//
// 打分规则：
//   - 未定义的相似度（邻居无购买历史）按零贡献处理："无证据"而非"负证据"
//   - 目标客户已购买（强度 > 0）的商品绝不进入候选
//   - 分数为 0 的候选整体剔除——没有任何相似客户买过，不构成推荐信号
//
// 两个矩阵都是一次批量计算的只读快照；排序器自身无状态，可并发使用。
type UserCF struct {
	Interaction *matrix.Interaction
	Similarity  *matrix.Similarity

	// MaxNeighbors 参与打分的相似客户数量上限（按相似度降序截取）。
	// <= 0 表示使用全部邻居。
	MaxNeighbors int
}

// neighborRef 是打分时的邻居引用：行索引 + 相似度。
type neighborRef struct {
	idx int
	sim float64
}

// Recommend 为目标客户生成至多 n 条推荐。
//
// 错误：
//   - 目标客户不在矩阵索引中：core.ErrUnknownCustomer（调用方契约违规）
//   - 目标客户无购买历史（相似度整行未定义）：返回合法的空列表，
//     并附带 core.ErrNoSimilarityData 供调用方上报；这是高频的可恢复状态
//
// n <= 0 表示不截断。候选不足 n 条时返回全部，不是错误。
func (r *UserCF) Recommend(targetID string, n int) ([]*core.Recommendation, error) {
	targetIdx, ok := r.Interaction.CustomerIndex(targetID)
	if !ok {
		return nil, core.ErrUnknownCustomer
	}
	if !r.Similarity.HasData(targetID) {
		return []*core.Recommendation{}, core.ErrNoSimilarityData
	}

	neighbors := r.neighbors(targetIdx)

	// score[p] = Σ_c sim(target, c) · strength(c, p)，只对目标未购买的 p
	targetRow := r.Interaction.Row(targetIdx)
	products := r.Interaction.Products()
	scores := make([]float64, len(products))
	contributors := make([]int, len(products))
	for _, nb := range neighbors {
		row := r.Interaction.Row(nb.idx)
		for j, strength := range row {
			if strength == 0 || targetRow[j] > 0 {
				continue
			}
			scores[j] += nb.sim * strength
			contributors[j]++
		}
	}

	out := make([]*core.Recommendation, 0, len(products))
	for j, score := range scores {
		if score <= 0 {
			continue
		}
		rec := core.NewRecommendation(products[j])
		rec.Score = score
		rec.Meta["neighbors"] = contributors[j]
		rec.PutLabel("source", utils.Label{Value: "user_cf", Source: "recommend"})
		out = append(out, rec)
	}

	// 降序排序；同分按商品 ID 升序，保证重复运行结果逐位一致
	sort.Slice(out, func(a, b int) bool {
		if out[a].Score != out[b].Score {
			return out[a].Score > out[b].Score
		}
		return out[a].ProductID < out[b].ProductID
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Neighbors 返回与目标客户最相似的至多 k 个客户（相似度降序，
// 同分按客户 ID 升序）。相似度为 0 或未定义的客户不计入。
//
// 错误语义与 Recommend 一致：未知客户返回 core.ErrUnknownCustomer，
// 无购买历史返回空列表 + core.ErrNoSimilarityData。
func (r *UserCF) Neighbors(targetID string, k int) ([]core.Neighbor, error) {
	targetIdx, ok := r.Similarity.CustomerIndex(targetID)
	if !ok {
		return nil, core.ErrUnknownCustomer
	}
	if !r.Similarity.HasData(targetID) {
		return []core.Neighbor{}, core.ErrNoSimilarityData
	}

	customers := r.Similarity.Customers()
	out := make([]core.Neighbor, 0, k)
	for i, customerID := range customers {
		if i == targetIdx {
			continue
		}
		sim, defined := r.Similarity.At(targetIdx, i)
		if !defined || sim <= 0 {
			continue
		}
		out = append(out, core.Neighbor{CustomerID: customerID, Similarity: sim})
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Similarity != out[b].Similarity {
			return out[a].Similarity > out[b].Similarity
		}
		return out[a].CustomerID < out[b].CustomerID
	})

	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out, nil
}

// neighbors 收集参与打分的邻居：排除自身，跳过未定义相似度，
// MaxNeighbors > 0 时按相似度降序截取前 MaxNeighbors 个。
func (r *UserCF) neighbors(targetIdx int) []neighborRef {
	dim := r.Similarity.Dim()
	out := make([]neighborRef, 0, dim-1)
	for i := 0; i < dim; i++ {
		if i == targetIdx {
			continue
		}
		sim, defined := r.Similarity.At(targetIdx, i)
		if !defined || sim == 0 {
			continue
		}
		out = append(out, neighborRef{idx: i, sim: sim})
	}

	if r.MaxNeighbors > 0 && len(out) > r.MaxNeighbors {
		sort.Slice(out, func(a, b int) bool {
			if out[a].sim != out[b].sim {
				return out[a].sim > out[b].sim
			}
			return out[a].idx < out[b].idx
		})
		out = out[:r.MaxNeighbors]
	}
	return out
}
