package jsonseq

import (
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind 键值的类别，missing 和 null 是两个不同的键
type Kind int

const (
	KindMissing Kind = iota
	KindNull
	KindFalse
	KindTrue
	KindNumber
	KindString
	KindJSON // 对象或数组，按紧凑后的原文比较
)

// Key 可比较的键值，数字/字符串/布尔按值相等
// 所以 1 和 1.0 是同一个键，1 和 "1" 不是
// 超出范围的数字字面量 Num 为 Inf，Str 保留原文
type Key struct {
	Kind Kind
	Num  float64
	Str  string
}

// KeyOf 把 gjson 结果转成键
func KeyOf(res gjson.Result) Key {
	if !res.Exists() {
		return Key{Kind: KindMissing}
	}
	switch res.Type {
	case gjson.Null:
		return Key{Kind: KindNull}
	case gjson.False:
		return Key{Kind: KindFalse}
	case gjson.True:
		return Key{Kind: KindTrue}
	case gjson.Number:
		if math.IsInf(res.Num, 0) {
			return Key{Kind: KindNumber, Num: res.Num, Str: res.Raw}
		}
		return Key{Kind: KindNumber, Num: res.Num}
	case gjson.String:
		return Key{Kind: KindString, Str: res.Str}
	default:
		return Key{Kind: KindJSON, Str: string(pretty.Ugly([]byte(res.Raw)))}
	}
}

// Absent missing 或 null
func (k Key) Absent() bool {
	return k.Kind == KindMissing || k.Kind == KindNull
}

// Raw 键的 JSON 文本，missing 没有 JSON 表示，返回空串
func (k Key) Raw() string {
	switch k.Kind {
	case KindMissing:
		return ""
	case KindNull:
		return "null"
	case KindFalse:
		return "false"
	case KindTrue:
		return "true"
	case KindNumber:
		if k.Str != "" {
			return k.Str
		}
		return FormatNumber(k.Num)
	case KindString:
		return string(gjson.AppendJSONString(nil, k.Str))
	default:
		return k.Str
	}
}

// String 方便日志和 txt 输出，字符串不带引号
// 字符串本身像 null、数字或者 <missing> 时带上引号，和真正的 null/数字区分开
func (k Key) String() string {
	switch k.Kind {
	case KindMissing:
		return missingText
	case KindString:
		if k.Str == missingText || (gjson.Valid(k.Str) && gjson.Parse(k.Str).Type != gjson.String) {
			return k.Raw()
		}
		return k.Str
	default:
		return k.Raw()
	}
}

const missingText = "<missing>"

// keyLess 给集合排序用: null < false < true < 数字 < 字符串 < 对象/数组
func keyLess(a, b Key) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case KindNumber:
		if a.Num != b.Num {
			return a.Num < b.Num
		}
		return a.Str < b.Str
	case KindString, KindJSON:
		return a.Str < b.Str
	default:
		return false
	}
}
