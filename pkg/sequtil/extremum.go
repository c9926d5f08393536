package sequtil

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

func less[K constraints.Ordered](a, b K) bool    { return a < b }
func greater[K constraints.Ordered](a, b K) bool { return a > b }

// pickValue 在数值里挑出最优的那个
// 遇到 NaN 直接返回 NaN，NaN 和任何值比较都没有意义
func pickValue[N Number](values []N, better func(a, b N) bool) N {
	best := values[0]
	for _, v := range values {
		if v != v {
			return v
		}
		if better(v, best) {
			best = v
		}
	}
	return best
}

// pickElement 返回 transform 结果最优的原始元素
// 只有严格更优才替换候选，所以并列时先出现的胜出
// NaN 键和缺失值一样跳过，否则排在第一个的 NaN 永远不会被替换
func pickElement[T any, K constraints.Ordered](data []T, f func(T) (K, bool), better func(a, b K) bool) (T, bool) {
	var (
		candidate    T
		candidateKey K
		found        bool
	)
	for _, v := range data {
		k, ok := f(v)
		if !ok || k != k {
			continue
		}
		if !found || better(k, candidateKey) {
			candidate, candidateKey, found = v, k, true
		}
	}
	return candidate, found
}

// Min 返回最小值，空序列返回 ErrEmptyInput
func Min[N Number](s Stream[N]) (N, error) {
	if len(s.data) == 0 {
		var zero N
		return zero, fmt.Errorf("min: %w", ErrEmptyInput)
	}
	return pickValue(s.data, less[N]), nil
}

func Max[N Number](s Stream[N]) (N, error) {
	if len(s.data) == 0 {
		var zero N
		return zero, fmt.Errorf("max: %w", ErrEmptyInput)
	}
	return pickValue(s.data, greater[N]), nil
}

// MinOf 先做 transform，丢掉缺失值，再取最小值
// 原序列为空，或者丢完之后一个都不剩，都返回 ErrEmptyInput
func MinOf[T any, N Number](s Stream[T], transform func(T) (N, bool)) (N, error) {
	return extremumOf("minOf", s, transform, less[N])
}

func MaxOf[T any, N Number](s Stream[T], transform func(T) (N, bool)) (N, error) {
	return extremumOf("maxOf", s, transform, greater[N])
}

func extremumOf[T any, N Number](op string, s Stream[T], transform func(T) (N, bool), better func(a, b N) bool) (N, error) {
	var zero N
	if len(s.data) == 0 {
		return zero, fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}
	values := MapNotNull(s, transform).data
	if len(values) == 0 {
		return zero, fmt.Errorf("%s: all %d values absent: %w", op, len(s.data), ErrEmptyInput)
	}
	return pickValue(values, better), nil
}

// MinBy 返回 transform 结果最小的原始元素
// 空序列返回 ErrEmptyInput，全部缺失返回 ErrNoQualifyingValue
func MinBy[T any, K constraints.Ordered](s Stream[T], transform func(T) (K, bool)) (T, error) {
	return extremumBy("minBy", s, transform, less[K])
}

func MaxBy[T any, K constraints.Ordered](s Stream[T], transform func(T) (K, bool)) (T, error) {
	return extremumBy("maxBy", s, transform, greater[K])
}

func extremumBy[T any, K constraints.Ordered](op string, s Stream[T], transform func(T) (K, bool), better func(a, b K) bool) (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, ErrEmptyInput)
	}
	v, ok := pickElement(s.data, transform, better)
	if !ok {
		return v, fmt.Errorf("%s: %w", op, ErrNoQualifyingValue)
	}
	return v, nil
}

// MinByOrNull 选择规则和 MinBy 相同，失败时返回 (零值, false) 而不是错误
func MinByOrNull[T any, K constraints.Ordered](s Stream[T], transform func(T) (K, bool)) (T, bool) {
	return pickElement(s.data, transform, less[K])
}

func MaxByOrNull[T any, K constraints.Ordered](s Stream[T], transform func(T) (K, bool)) (T, bool) {
	return pickElement(s.data, transform, greater[K])
}
