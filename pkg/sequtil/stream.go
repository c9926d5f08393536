package sequtil

import (
	"github.com/mohae/deepcopy"
)

// Stream 是一个只读的序列容器，所有操作都返回新的结果，不修改原始切片
type Stream[T any] struct {
	data []T
}

// StreamOf 将切片包装为 Stream 对象
func StreamOf[T any](data []T) Stream[T] {
	return Stream[T]{data}
}

// Of 可变参数版本，写测试和小数据时方便
func Of[T any](items ...T) Stream[T] {
	return Stream[T]{items}
}

func (s Stream[T]) ToSlice() []T {
	return s.data
}

// ToSliceSafe 返回底层数据的深拷贝
func (s Stream[T]) ToSliceSafe() []T {
	if s.data == nil {
		return nil
	}
	return deepcopy.Copy(s.data).([]T)
}

// clone 深拷贝单个元素，nil 接口值 deepcopy 会返回 nil，需要单独处理
func clone[T any](v T) T {
	c := deepcopy.Copy(v)
	if c == nil {
		var zero T
		return zero
	}
	return c.(T)
}

func (s Stream[T]) Count() int {
	return len(s.data)
}

func (s Stream[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// First 不传谓词时返回第一个元素，传了就返回第一个满足谓词的元素
// 第二个返回值为 false 表示不存在
func (s Stream[T]) First(pred ...func(T) bool) (T, bool) {
	return First(s, pred...)
}

func (s Stream[T]) Last(pred ...func(T) bool) (T, bool) {
	return Last(s, pred...)
}

func (s Stream[T]) Any(pred func(T) bool) bool {
	return Any(s, pred)
}

func (s Stream[T]) None(pred func(T) bool) bool {
	return None(s, pred)
}

func (s Stream[T]) Filter(pred func(T) bool) Stream[T] {
	return Filter(s, pred)
}

func (s Stream[T]) FilterNotNull() Stream[T] {
	return FilterNotNull(s)
}

// 干活但是不回报，副作用函数，不能改变原始数据
func (s Stream[T]) ForEach(f func(T)) {
	for _, v := range s.data {
		f(v)
	}
}

// Filter 过滤切片中满足条件的元素，保持原有顺序
func Filter[T any](s Stream[T], pred func(T) bool) Stream[T] {
	out := make([]T, 0, len(s.data))
	for _, v := range s.data {
		if pred(v) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// Map 映射元素为另一个类型
func Map[T any, R any](s Stream[T], f func(T) R) Stream[R] {
	out := make([]R, len(s.data))
	for i, v := range s.data {
		out[i] = f(v)
	}
	return Stream[R]{out}
}

// Reduce 从左到右归约，浮点累加的舍入顺序和输入顺序一致
func Reduce[T any, R any](s Stream[T], init R, comb func(R, T) R) R {
	acc := init
	for _, v := range s.data {
		acc = comb(acc, v)
	}
	return acc
}

// GroupBy 按某个 key 对元素进行分组，组内保持输入顺序
func GroupBy[T any, K comparable](s Stream[T], keyFunc func(T) K) map[K][]T {
	result := make(map[K][]T)
	for _, v := range s.data {
		k := keyFunc(v)
		result[k] = append(result[k], v)
	}
	return result
}

// Peek 对每个元素执行副作用操作（如打印），返回原流
func Peek[T any](s Stream[T], f func(T)) Stream[T] {
	for _, v := range s.data {
		f(v)
	}
	return s
}
