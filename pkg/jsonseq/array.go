// Package jsonseq 在 JSON 数组上提供和 sequtil 相同的序列操作。
//
// 缺失值直接对应 JSON 的两种状态: 路径不存在为 missing，值为 null 为 null，
// 所有 …Of/…By/FilterNotNull/MapNotNull 操作都把两者当作缺失处理。
// 路径语法就是 gjson 的路径语法，空路径表示元素本身。
package jsonseq

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"seq_tool/pkg/sequtil"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotArray    = errors.New("JSON value is not an array")
)

// Array 是解析好的 JSON 数组，元素保持原始顺序
type Array struct {
	elems sequtil.Stream[gjson.Result]
}

// Parse 解析 JSON 文本，顶层必须是数组
func Parse(raw string) (Array, error) {
	if !gjson.Valid(raw) {
		return Array{}, ErrInvalidJSON
	}
	res := gjson.Parse(raw)
	if !res.IsArray() {
		return Array{}, fmt.Errorf("%w: got %s", ErrNotArray, typeName(res))
	}
	return Array{elems: sequtil.StreamOf(res.Array())}, nil
}

func ParseBytes(raw []byte) (Array, error) {
	return Parse(string(raw))
}

// Len 数组元素个数
func (a Array) Len() int {
	return a.elems.Count()
}

func (a Array) Elements() []gjson.Result {
	return a.elems.ToSlice()
}

// JSON 重新渲染整个数组
func (a Array) JSON() string {
	return joinRaw(a.elems)
}

func typeName(res gjson.Result) string {
	switch {
	case !res.Exists():
		return "missing"
	case res.IsObject():
		return "object"
	case res.IsArray():
		return "array"
	}
	switch res.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.Null:
		return "null"
	case gjson.True, gjson.False:
		return "bool"
	}
	return "unknown"
}
