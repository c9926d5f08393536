package sequtil

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number 可以参与 min/max/sum 运算的数值类型
type Number interface {
	constraints.Integer | constraints.Float
}

// 缺失值约定: transform 返回 (值, ok)，ok 为 false 表示没有产出值
// null(nil) 和 missing 对所有过滤类操作来说一视同仁

// Present 包装一个存在的值
func Present[R any](v R) (R, bool) {
	return v, true
}

// Absent 返回缺失值
func Absent[R any]() (R, bool) {
	var zero R
	return zero, false
}

// Identity 把数值流本身当作 transform 结果，sum(S) == sumOf(S, Identity) 就靠它
func Identity[N any](v N) (N, bool) {
	return v, true
}

// Deref 把返回指针的 transform 转成缺失值约定，nil 指针视为缺失
// 结构体里用指针字段表示“可能没有”的场景最常见
func Deref[T any, R any](f func(T) *R) func(T) (R, bool) {
	return func(v T) (R, bool) {
		p := f(v)
		if p == nil {
			return Absent[R]()
		}
		return *p, true
	}
}

// IsNull 判断一个值是否为 null
// 指针、接口、map、切片、chan、func 为 nil 时都算 null，其余类型永远不是 null
func IsNull[T any](v T) bool {
	return isNil(any(v))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
