package seqcmd

import (
	"github.com/tidwall/gjson"

	"seq_tool/pkg/jsonseq"
)

type resultKind int

const (
	kindBool resultKind = iota
	kindNumber
	kindElement // 单个元素，可能缺失
	kindArray
	kindMapping
)

// Result 子命令的计算结果，交给格式化器输出
type Result struct {
	kind    resultKind
	boolean bool
	number  float64
	value   gjson.Result
	assoc   jsonseq.Association
}

func boolResult(b bool) Result {
	return Result{kind: kindBool, boolean: b}
}

func numberResult(n float64) Result {
	return Result{kind: kindNumber, number: n}
}

func elementResult(v gjson.Result) Result {
	return Result{kind: kindElement, value: v}
}

func arrayResult(raw string) Result {
	return Result{kind: kindArray, value: gjson.Parse(raw)}
}

func mappingResult(as jsonseq.Association) Result {
	return Result{kind: kindMapping, assoc: as}
}

// Absent 元素结果不存在
func (r Result) Absent() bool {
	return r.kind == kindElement && !r.value.Exists()
}

// Falsy --check 用: 缺失或者布尔假
func (r Result) Falsy() bool {
	return r.Absent() || (r.kind == kindBool && !r.boolean)
}
