package recommend

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/retailcf/core"
	"github.com/rushteam/retailcf/matrix"
)

// Engine 是一次批量推荐运行的编排器。
//
// 生命周期：
//  1. Build：从 TransactionStore 拉取交互记录快照，构建交互矩阵，
//     计算相似度矩阵（一次计算，批内复用）
//  2. Recommend / Neighbors / Stats：在同一份只读快照上服务查询
//
// 相似度矩阵是显式的不可变产物，由 Engine 持有并传入排序器，
// 生命周期限定在一次批量运行内——不是隐式重算的全局单例。
// 数据更新通过重新 Build 产生新快照，旧快照不被修改。
type Engine struct {
	// Store 是交互记录快照的来源
	Store core.TransactionStore

	// Workers 相似度计算的并行度；<= 0 表示单线程
	Workers int

	// MaxNeighbors 透传给排序器，<= 0 表示使用全部邻居
	MaxNeighbors int

	// Cache 可选：Build 之后把相似度矩阵以稀疏三元组形式写入，
	// 供外部巡检或下一次进程启动时预热
	Cache    core.Store
	CacheKey string
	CacheTTL int // 秒，0 表示不过期

	mu          sync.RWMutex
	interaction *matrix.Interaction
	similarity  *matrix.Similarity
	ranker      *UserCF
}

var errNotBuilt = core.NewDomainError(core.ModuleRecommend, core.ErrorCodeInternalError, "recommend: engine snapshot not built")

// Build 拉取快照并构建两个矩阵。可重复调用，每次产生全新快照。
func (e *Engine) Build(ctx context.Context) error {
	records, err := e.Store.ListTransactions(ctx)
	if err != nil {
		return err
	}

	interaction, err := matrix.BuildInteraction(records)
	if err != nil {
		return err
	}

	similarity, err := matrix.ComputeSimilarityParallel(ctx, interaction, e.Workers)
	if err != nil {
		return err
	}

	if e.Cache != nil {
		key := e.CacheKey
		if key == "" {
			key = "retailcf:similarity"
		}
		if data, err := matrix.EncodeSimilarity(similarity); err == nil {
			// 缓存写失败不影响本次运行，快照仍在内存中
			_ = e.Cache.Set(ctx, key, data, e.CacheTTL)
		}
	}

	e.mu.Lock()
	e.interaction = interaction
	e.similarity = similarity
	e.ranker = &UserCF{
		Interaction:  interaction,
		Similarity:   similarity,
		MaxNeighbors: e.MaxNeighbors,
	}
	e.mu.Unlock()
	return nil
}

func (e *Engine) snapshot() (*UserCF, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.ranker == nil {
		return nil, errNotBuilt
	}
	return e.ranker, nil
}

// Recommend 为目标客户生成至多 n 条推荐（语义见 UserCF.Recommend）。
func (e *Engine) Recommend(targetID string, n int) ([]*core.Recommendation, error) {
	ranker, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return ranker.Recommend(targetID, n)
}

// Neighbors 返回目标客户的至多 k 个相似客户（语义见 UserCF.Neighbors）。
func (e *Engine) Neighbors(targetID string, k int) ([]core.Neighbor, error) {
	ranker, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return ranker.Neighbors(targetID, k)
}

// RecommendBatch 并行地为多个目标客户生成推荐。
// 每个目标是独立的计算单元，按 Workers 限制并发；
// 无购买历史的客户得到空列表（不报错），未知客户使整批失败。
func (e *Engine) RecommendBatch(ctx context.Context, targetIDs []string, n int) (map[string][]*core.Recommendation, error) {
	ranker, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	results := make(map[string][]*core.Recommendation, len(targetIDs))

	eg, egCtx := errgroup.WithContext(ctx)
	workers := e.Workers
	if workers <= 0 {
		workers = 1
	}
	eg.SetLimit(workers)

	for _, targetID := range targetIDs {
		targetID := targetID
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			recs, err := ranker.Recommend(targetID, n)
			if err != nil && !core.IsNoSimilarityData(err) {
				return err
			}
			mu.Lock()
			results[targetID] = recs
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Stats 是快照的规模/稀疏度指标。
type Stats struct {
	Customers int     // 矩阵行数
	Products  int     // 矩阵列数
	NonZero   int     // 强度 > 0 的单元格数
	Density   float64 // 非零单元格占比 [0, 1]
}

// Stats 返回当前快照的矩阵指标。
func (e *Engine) Stats() (Stats, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.interaction == nil {
		return Stats{}, errNotBuilt
	}
	c, p := e.interaction.Dims()
	return Stats{
		Customers: c,
		Products:  p,
		NonZero:   e.interaction.NonZero(),
		Density:   e.interaction.Density(),
	}, nil
}

// InteractionMatrix 暴露交互矩阵快照供调用方巡检/调试。只读。
func (e *Engine) InteractionMatrix() *matrix.Interaction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.interaction
}

// SimilarityMatrix 暴露相似度矩阵快照供调用方巡检/调试。只读。
func (e *Engine) SimilarityMatrix() *matrix.Similarity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.similarity
}
