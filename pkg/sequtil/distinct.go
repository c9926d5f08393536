package sequtil

// Distinct 按值去重，保留第一次出现的顺序
// 注意: T 为 any 时如果里面装了切片、map 这类不可比较的值，map 查找会 panic
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy 按 transform 的结果去重，同一个 key 保留最早的元素
// 和 AssociateBy 正好相反，那边是后来者覆盖
// 所有 NaN 键算同一个键
func DistinctBy[T any, K comparable](s Stream[T], transform func(T) K) Stream[T] {
	seen := make(map[K]struct{}, len(s.data))
	seenNaN := false
	out := make([]T, 0, len(s.data))
	for _, v := range s.data {
		k := transform(v)
		if isNaN(k) {
			if seenNaN {
				continue
			}
			seenNaN = true
			out = append(out, v)
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return Stream[T]{out}
}

// isNaN map 里 NaN != NaN，每个 NaN 都会占一个新槽位，需要单独识别
func isNaN[K comparable](k K) bool {
	switch v := any(k).(type) {
	case float64:
		return v != v
	case float32:
		return v != v
	}
	return false
}

// DistinctBySafe 深拷贝保留下来的元素，避免引用穿透
func DistinctBySafe[T any, K comparable](s Stream[T], transform func(T) K) Stream[T] {
	kept := DistinctBy(s, transform)
	for i, v := range kept.data {
		kept.data[i] = clone(v)
	}
	return kept
}

// FilterNotNull 去掉 nil 元素，类型保持不变
func FilterNotNull[T any](s Stream[T]) Stream[T] {
	return Filter(s, func(v T) bool { return !isNil(any(v)) })
}

// FilterNotNullSafe 去掉 nil 之后再深拷贝
func FilterNotNullSafe[T any](s Stream[T]) Stream[T] {
	kept := FilterNotNull(s)
	for i, v := range kept.data {
		kept.data[i] = clone(v)
	}
	return kept
}

// FilterNotNullPtr 去掉 nil 指针并解引用，元素类型从 *T 收窄为 T
func FilterNotNullPtr[T any](s Stream[*T]) Stream[T] {
	return MapNotNull(s, func(p *T) (T, bool) {
		if p == nil {
			return Absent[T]()
		}
		return *p, true
	})
}

// MapNotNull 对每个元素做 transform，丢掉缺失值和 nil，保持剩余结果的顺序
func MapNotNull[T any, R any](s Stream[T], transform func(T) (R, bool)) Stream[R] {
	out := make([]R, 0, len(s.data))
	for _, v := range s.data {
		r, ok := transform(v)
		if !ok || isNil(any(r)) {
			continue
		}
		out = append(out, r)
	}
	return Stream[R]{out}
}

// MapNotNullSafe 使用 deepcopy 保护每个返回值，防止引用泄漏
func MapNotNullSafe[T any, R any](s Stream[T], transform func(T) (R, bool)) Stream[R] {
	mapped := MapNotNull(s, transform)
	for i, r := range mapped.data {
		mapped.data[i] = clone(r)
	}
	return mapped
}
