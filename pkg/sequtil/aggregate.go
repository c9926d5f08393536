package sequtil

// Sum 空序列返回 0，从左往右累加
func Sum[N Number](s Stream[N]) N {
	return Reduce(s, N(0), func(acc N, v N) N {
		return acc + v
	})
}

// SumOf 先 transform 再丢掉缺失值，最后求和
func SumOf[T any, N Number](s Stream[T], transform func(T) (N, bool)) N {
	return Sum(MapNotNull(s, transform))
}
