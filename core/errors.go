package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 矩阵构建错误：INVALID_RECORD, EMPTY_INPUT
//   - 推荐错误：UNKNOWN_CUSTOMER, NO_SIMILARITY_DATA
//   - 存储错误：NOT_FOUND, NOT_SUPPORTED
type DomainError struct {
	Code    string // 错误代码（如 "INVALID_RECORD", "UNKNOWN_CUSTOMER"）
	Message string // 错误消息
	Module  string // 模块名称（如 "matrix", "recommend", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误是否为 DomainError 类型
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*DomainError)
	return ok
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	// 矩阵构建错误代码
	ErrorCodeInvalidRecord = "INVALID_RECORD" // 交互记录非法（强度为负/NaN）
	ErrorCodeEmptyInput    = "EMPTY_INPUT"    // 输入记录为空，矩阵无法确定形状

	// 推荐错误代码
	ErrorCodeUnknownCustomer  = "UNKNOWN_CUSTOMER"   // 目标客户不在矩阵索引中
	ErrorCodeNoSimilarityData = "NO_SIMILARITY_DATA" // 目标客户无可用相似度信号（可恢复）

	// 通用错误代码
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleMatrix    = "matrix"    // 矩阵模块（交互矩阵 / 相似度矩阵）
	ModuleRecommend = "recommend" // 推荐模块
	ModuleStore     = "store"     // 存储模块
)

// 矩阵构建错误定义

var (
	// ErrInvalidRecord 表示交互记录的强度为负数或非数值，入库时拒绝而不是静默截断
	ErrInvalidRecord = NewDomainError(ModuleMatrix, ErrorCodeInvalidRecord, "matrix: invalid interaction record")

	// ErrEmptyInput 表示没有任何交互记录，矩阵形状无法确定
	ErrEmptyInput = NewDomainError(ModuleMatrix, ErrorCodeEmptyInput, "matrix: no transaction records supplied")
)

// 推荐错误定义

var (
	// ErrUnknownCustomer 表示推荐请求指定的客户不在交互矩阵索引中
	ErrUnknownCustomer = NewDomainError(ModuleRecommend, ErrorCodeUnknownCustomer, "recommend: customer not present in interaction matrix")

	// ErrNoSimilarityData 表示目标客户的相似度行全部未定义（无购买历史）。
	// 这是可恢复、可上报的状态，伴随一个合法的空推荐列表一起返回，
	// 调用方用 IsNoSimilarityData 区分"无推荐依据"与"尚未计算"。
	ErrNoSimilarityData = NewDomainError(ModuleRecommend, ErrorCodeNoSimilarityData, "recommend: customer has no usable similarity data")
)

// IsInvalidRecord 检查错误是否为 INVALID_RECORD
func IsInvalidRecord(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidRecord
	}
	return false
}

// IsEmptyInput 检查错误是否为 EMPTY_INPUT
func IsEmptyInput(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeEmptyInput
	}
	return false
}

// IsUnknownCustomer 检查错误是否为 UNKNOWN_CUSTOMER
func IsUnknownCustomer(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeUnknownCustomer
	}
	return false
}

// IsNoSimilarityData 检查错误是否为 NO_SIMILARITY_DATA
func IsNoSimilarityData(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNoSimilarityData
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotSupported
	}
	return false
}
