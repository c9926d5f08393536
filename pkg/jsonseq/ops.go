package jsonseq

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/tidwall/gjson"

	"seq_tool/pkg/sequtil"
)

// Any 有元素满足条件即为真
func (a Array) Any(cond string) bool {
	return sequtil.Any(a.elems, Where(cond))
}

func (a Array) None(cond string) bool {
	return sequtil.None(a.elems, Where(cond))
}

// First 返回第一个满足条件的元素，cond 为空时直接取第一个元素
// 找不到时返回的 Result.Exists() 为 false
func (a Array) First(cond string) gjson.Result {
	v, _ := sequtil.First(a.elems, optionalWhere(cond)...)
	return v
}

func (a Array) Last(cond string) gjson.Result {
	v, _ := sequtil.Last(a.elems, optionalWhere(cond)...)
	return v
}

func optionalWhere(cond string) []func(gjson.Result) bool {
	if cond == "" {
		return nil
	}
	return []func(gjson.Result) bool{Where(cond)}
}

// Min 只比较数字元素，null 和非数字元素先被过滤掉
// 过滤完什么都不剩也按空输入处理
func (a Array) Min() (float64, error) {
	return sequtil.MinOf(a.elems, numberAt(""))
}

func (a Array) Max() (float64, error) {
	return sequtil.MaxOf(a.elems, numberAt(""))
}

func (a Array) MinOf(path string) (float64, error) {
	return sequtil.MinOf(a.elems, numberAt(path))
}

func (a Array) MaxOf(path string) (float64, error) {
	return sequtil.MaxOf(a.elems, numberAt(path))
}

// MinBy 返回 path 上数值最小的原始元素，并列取最早的
func (a Array) MinBy(path string) (gjson.Result, error) {
	return sequtil.MinBy(a.elems, numberAt(path))
}

func (a Array) MaxBy(path string) (gjson.Result, error) {
	return sequtil.MaxBy(a.elems, numberAt(path))
}

// MinByOrNull 没有结果时返回的 Result.Exists() 为 false
func (a Array) MinByOrNull(path string) gjson.Result {
	v, _ := sequtil.MinByOrNull(a.elems, numberAt(path))
	return v
}

func (a Array) MaxByOrNull(path string) gjson.Result {
	v, _ := sequtil.MaxByOrNull(a.elems, numberAt(path))
	return v
}

// Sum 空数组为 0，非数字元素跳过
func (a Array) Sum() float64 {
	return sequtil.SumOf(a.elems, numberAt(""))
}

func (a Array) SumOf(path string) float64 {
	return sequtil.SumOf(a.elems, numberAt(path))
}

// Distinct 按值去重，对象和数组按紧凑后的原文比较
func (a Array) Distinct() Array {
	return Array{elems: sequtil.DistinctBy(a.elems, KeyOf)}
}

// DistinctBy 同一个键保留最早出现的元素，missing 和 null 是两个不同的键
func (a Array) DistinctBy(path string) Array {
	return Array{elems: sequtil.DistinctBy(a.elems, keyAt(path))}
}

// FilterNotNull 去掉 null 元素
func (a Array) FilterNotNull() Array {
	return Array{elems: sequtil.Filter(a.elems, func(res gjson.Result) bool { return !isAbsent(res) })}
}

// MapNotNull 取 path 上的值，缺失和 null 丢掉
func (a Array) MapNotNull(path string) Array {
	return Array{elems: sequtil.MapNotNull(a.elems, valueAt(path))}
}

// Association 是 AssociateBy 的结果，键的顺序按第一次出现排列，值是最后一次写入的元素
type Association struct {
	entries *linkedhashmap.Map
}

// AssociateBy 按 path 上的值建立映射，同一个键后来的覆盖前面的
func (a Array) AssociateBy(path string) Association {
	m := linkedhashmap.New()
	selector := keyAt(path)
	a.elems.ForEach(func(res gjson.Result) {
		m.Put(selector(res), res)
	})
	return Association{entries: m}
}

func (as Association) Len() int {
	return as.entries.Size()
}

// Get 按键取值，第二个返回值表示键是否存在
func (as Association) Get(k Key) (gjson.Result, bool) {
	v, ok := as.entries.Get(k)
	if !ok {
		return gjson.Result{}, false
	}
	return v.(gjson.Result), true
}

// Each 按键的顺序遍历
func (as Association) Each(f func(k Key, v gjson.Result)) {
	it := as.entries.Iterator()
	for it.Next() {
		f(it.Key().(Key), it.Value().(gjson.Result))
	}
}

// JSON 渲染成 [{"key":K,"value":V}, ...]
func (as Association) JSON() (string, error) {
	entries := make([]gjson.Result, 0, as.entries.Size())
	var renderErr error
	as.Each(func(k Key, v gjson.Result) {
		if renderErr != nil {
			return
		}
		raw, err := entryJSON(k, v)
		if err != nil {
			renderErr = err
			return
		}
		entries = append(entries, gjson.Result{Type: gjson.JSON, Raw: raw})
	})
	if renderErr != nil {
		return "", renderErr
	}
	return joinRaw(sequtil.StreamOf(entries)), nil
}
