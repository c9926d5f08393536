package sequtil

// StreamBuilder 把中间步骤串起来，最后用终结函数一次性执行
// 中间步骤只记录不执行，Build 时才按顺序作用到数据上
type StreamBuilder[T any] struct {
	steps []func(Stream[T]) Stream[T]
}

// 新建构建器
func NewStreamBuilder[T any]() *StreamBuilder[T] {
	return &StreamBuilder[T]{}
}

func (b *StreamBuilder[T]) then(step func(Stream[T]) Stream[T]) *StreamBuilder[T] {
	b.steps = append(b.steps, step)
	return b
}

func (b *StreamBuilder[T]) Filter(pred func(T) bool) *StreamBuilder[T] {
	return b.then(func(s Stream[T]) Stream[T] { return Filter(s, pred) })
}

func (b *StreamBuilder[T]) FilterNotNull() *StreamBuilder[T] {
	return b.then(FilterNotNull[T])
}

// Map(类型不变的映射，保持链条不断)
func (b *StreamBuilder[T]) Map(f func(T) T) *StreamBuilder[T] {
	return b.then(func(s Stream[T]) Stream[T] { return Map(s, f) })
}

// MapNotNull 类型不变的版本，缺失结果直接丢掉
func (b *StreamBuilder[T]) MapNotNull(f func(T) (T, bool)) *StreamBuilder[T] {
	return b.then(func(s Stream[T]) Stream[T] { return MapNotNull(s, f) })
}

// DistinctBy 的 key 在构建器里只能是 any，Go 的方法不能再带类型参数
func (b *StreamBuilder[T]) DistinctBy(key func(T) any) *StreamBuilder[T] {
	return b.then(func(s Stream[T]) Stream[T] { return DistinctBy(s, key) })
}

// Peek（仅副作用）
func (b *StreamBuilder[T]) Peek(f func(T)) *StreamBuilder[T] {
	return b.then(func(s Stream[T]) Stream[T] { return Peek(s, f) })
}

// 执行构建并返回最终 Stream
func (b *StreamBuilder[T]) Build(data []T) Stream[T] {
	stream := StreamOf(data)
	for _, step := range b.steps {
		stream = step(stream)
	}
	return stream
}

// Any和Build一样是终结函数
func (b *StreamBuilder[T]) Any(data []T, pred func(T) bool) bool {
	return Any(b.Build(data), pred)
}

// None 终结函数
func (b *StreamBuilder[T]) None(data []T, pred func(T) bool) bool {
	return None(b.Build(data), pred)
}

func (b *StreamBuilder[T]) First(data []T, pred ...func(T) bool) (T, bool) {
	return First(b.Build(data), pred...)
}

func (b *StreamBuilder[T]) Last(data []T, pred ...func(T) bool) (T, bool) {
	return Last(b.Build(data), pred...)
}

// NumberStreamBuilder 保留链式调用，同时告诉编译器流里的元素是数值
type NumberStreamBuilder[N Number] struct {
	StreamBuilder[N]
}

func NewNumberStreamBuilder[N Number]() *NumberStreamBuilder[N] {
	return &NumberStreamBuilder[N]{StreamBuilder: *NewStreamBuilder[N]()}
}

// 这些转发函数不是多余的，保证返回的类型正确，不至于变成StreamBuilder
func (b *NumberStreamBuilder[N]) Filter(pred func(N) bool) *NumberStreamBuilder[N] {
	b.StreamBuilder.Filter(pred)
	return b
}

func (b *NumberStreamBuilder[N]) Map(f func(N) N) *NumberStreamBuilder[N] {
	b.StreamBuilder.Map(f)
	return b
}

func (b *NumberStreamBuilder[N]) Distinct() *NumberStreamBuilder[N] {
	b.then(Distinct[N])
	return b
}

func (b *NumberStreamBuilder[N]) Min(data []N) (N, error) {
	return Min(b.Build(data))
}

func (b *NumberStreamBuilder[N]) Max(data []N) (N, error) {
	return Max(b.Build(data))
}

func (b *NumberStreamBuilder[N]) Sum(data []N) N {
	return Sum(b.Build(data))
}

func (b *NumberStreamBuilder[N]) ToSet(data []N) Set[N] {
	return ToSet(b.Build(data))
}
