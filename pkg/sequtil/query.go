package sequtil

// Any 只要有一个元素满足条件就是真，空序列为假
func Any[T any](s Stream[T], pred func(T) bool) bool {
	for _, v := range s.data {
		if pred(v) {
			return true
		}
	}
	return false
}

// None 等价于 !Any
func None[T any](s Stream[T], pred func(T) bool) bool {
	return !Any(s, pred)
}

func All[T any](s Stream[T], pred func(T) bool) bool {
	for _, v := range s.data {
		if !pred(v) {
			return false
		}
	}
	return true
}

// First 返回最早满足谓词的元素；不传谓词时返回第一个元素
// 只认第一个谓词，多传的忽略
func First[T any](s Stream[T], pred ...func(T) bool) (T, bool) {
	if len(pred) == 0 || pred[0] == nil {
		if len(s.data) == 0 {
			return Absent[T]()
		}
		return s.data[0], true
	}
	for _, v := range s.data {
		if pred[0](v) {
			return v, true
		}
	}
	return Absent[T]()
}

// Last 从尾部往前找，返回下标最大的满足谓词的元素
func Last[T any](s Stream[T], pred ...func(T) bool) (T, bool) {
	if len(pred) == 0 || pred[0] == nil {
		if len(s.data) == 0 {
			return Absent[T]()
		}
		return s.data[len(s.data)-1], true
	}
	for i := len(s.data) - 1; i >= 0; i-- {
		if pred[0](s.data[i]) {
			return s.data[i], true
		}
	}
	return Absent[T]()
}

// 找不到索引返回 -1
func IndexOf[T any](s Stream[T], pred func(T) bool) int {
	for i, v := range s.data {
		if pred(v) {
			return i
		}
	}
	return -1
}

func LastIndexOf[T any](s Stream[T], pred func(T) bool) int {
	for i := len(s.data) - 1; i >= 0; i-- {
		if pred(s.data[i]) {
			return i
		}
	}
	return -1
}
