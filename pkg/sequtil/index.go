package sequtil

// Set 按值去重的无序集合
type Set[T comparable] map[T]struct{}

func (s Set[T]) Contains(v T) bool {
	if isNaN(v) {
		for k := range s {
			if isNaN(k) {
				return true
			}
		}
		return false
	}
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

// Slice 返回集合里的元素，顺序不做保证
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// AssociateBy 以 keySelector 的结果为键建立映射
// 按顺序处理，同一个键后来的元素覆盖前面的
func AssociateBy[T any, K comparable](s Stream[T], keySelector func(T) K) map[K]T {
	out := make(map[K]T, len(s.data))
	for _, v := range s.data {
		out[keySelector(v)] = v
	}
	return out
}

// AssociateBySafe 映射里的每个值都是深拷贝
func AssociateBySafe[T any, K comparable](s Stream[T], keySelector func(T) K) map[K]T {
	out := AssociateBy(s, keySelector)
	for k, v := range out {
		out[k] = clone(v)
	}
	return out
}

// ToSet 把序列转成集合，多个 NaN 只保留一个
func ToSet[T comparable](s Stream[T]) Set[T] {
	out := make(Set[T], len(s.data))
	for _, v := range s.data {
		if isNaN(v) && out.Contains(v) {
			continue
		}
		out[v] = struct{}{}
	}
	return out
}
