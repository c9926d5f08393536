package sequtil

import "errors"

// 只有两类错误，库内部不做任何恢复，直接返回给调用者
var (
	// ErrEmptyInput 序列为空，或者过滤掉缺失值之后没有任何可比较的值
	ErrEmptyInput = errors.New("sequence is empty")
	// ErrNoQualifyingValue 序列不为空，但是 transform 对每个元素都给出了缺失值
	ErrNoQualifyingValue = errors.New("no non-absent values in sequence")
)
