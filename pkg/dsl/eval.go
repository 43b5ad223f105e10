package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/retailcf/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("rec", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是推荐结果上的规则解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法）：
//   - 基础：label.source == "user_cf" / rec.product_id != "P100"
//   - 数值：rec.score > 0.7 / rec.score >= 0.5
//   - 逻辑：label.source == "user_cf" && rec.score > 0.8
//   - 存在性：label.catalog != null
//   - 包含：label.source.contains("cf")
//
// 示例：
//   - `rec.score > 0.5` → 只保留置信度过半的推荐
//   - `label.catalog != null && label.catalog == "enriched"` → 主数据已补全
type Eval struct {
	rec  *core.Recommendation
	rctx *core.RecommendContext
	env  *cel.Env
}

// NewEval 创建一个新的规则解释器。
func NewEval(rec *core.Recommendation, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		rec:  rec,
		rctx: rctx,
		env:  env,
	}
}

// Evaluate 解析并执行 CEL 表达式，返回布尔结果。
//
// 注意：has(label.key) 可以用 label.key != null 替代
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}

	// 编译表达式
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	// 创建程序
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	// 执行表达式
	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误
		// 用户应该使用 label.key != null 来检查存在性，而不是直接访问
		return false, fmt.Errorf("eval error: %v", err)
	}

	// 转换为布尔值
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	// 构建 label map
	labels := make(map[string]interface{})
	for k, v := range e.rec.Labels {
		labels[k] = map[string]interface{}{
			"value":  v.Value,
			"source": v.Source,
		}
	}

	// 构建 rec map
	rec := map[string]interface{}{
		"product_id": e.rec.ProductID,
		"score":      e.rec.Score,
		"meta":       e.rec.Meta,
		"labels":     labels,
	}

	// 构建 rctx map
	rctx := map[string]interface{}{
		"customer_id": e.rctx.CustomerID,
		"scene":       e.rctx.Scene,
		"params":      e.rctx.Params,
	}

	// label 作为顶层访问：label.source 直接取 value
	// 注意：CEL 访问不存在的 key 会报错，用 label.key != null 检查存在性
	labelAccessor := make(map[string]interface{})
	for k, v := range labels {
		labelAccessor[k] = v.(map[string]interface{})["value"]
	}

	return map[string]interface{}{
		"rec":   rec,
		"label": labelAccessor,
		"rctx":  rctx,
	}
}
