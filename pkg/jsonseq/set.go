package jsonseq

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/google/btree"
	"github.com/tidwall/gjson"

	"seq_tool/pkg/sequtil"
)

// Set 按值去重的无序集合
type Set struct {
	items *hashset.Set
}

// ToSet 把数组转成集合
func (a Array) ToSet() Set {
	set := hashset.New()
	a.elems.ForEach(func(res gjson.Result) {
		set.Add(KeyOf(res))
	})
	return Set{items: set}
}

func (s Set) Len() int {
	return s.items.Size()
}

func (s Set) Contains(res gjson.Result) bool {
	return s.items.Contains(KeyOf(res))
}

// Keys 顺序不做保证
func (s Set) Keys() []Key {
	return sequtil.Map(sequtil.StreamOf(s.items.Values()), func(v any) Key {
		return v.(Key)
	}).ToSlice()
}

// JSON 顺序不做保证
func (s Set) JSON() string {
	return rawArray(s.Keys())
}

// Sorted 用 btree 排好序返回，方便输出稳定的结果
func (s Set) Sorted() []Key {
	tree := btree.NewG[Key](16, keyLess)
	for _, k := range s.Keys() {
		tree.ReplaceOrInsert(k)
	}
	out := make([]Key, 0, tree.Len())
	tree.Ascend(func(k Key) bool {
		out = append(out, k)
		return true
	})
	return out
}

func (s Set) SortedJSON() string {
	return rawArray(s.Sorted())
}

func rawArray(keys []Key) string {
	raws := sequtil.Map(sequtil.StreamOf(keys), Key.Raw).ToSlice()
	return "[" + strings.Join(raws, ",") + "]"
}
