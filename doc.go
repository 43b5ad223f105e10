// Package retailcf 是一个面向零售场景的 User-based 协同过滤推荐引擎。
//
// 设计要点：
// - Snapshot-first: 交互矩阵与相似度矩阵是一次批量运行的只读产物，批内复用、显式传递
// - Pipeline-first: 推荐结果的过滤/截断/主数据补全通过 Node 串联（Recommend → Filter → ReRank → PostProcess）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
package retailcf

import "github.com/rushteam/retailcf/pipeline"

// 轻量 facade：便于用户直接 import "retailcf" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecommend   = pipeline.KindRecommend
	KindFilter      = pipeline.KindFilter
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
