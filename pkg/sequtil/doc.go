// Package sequtil 提供对内存中有序序列的常用操作：
// 存在性判断、首尾查找、最值（可按 transform）、求和、去重、过滤 nil、按键建映射、转集合。
//
// 缺失值约定: 可能不产出结果的 transform 统一写成 func(T) (R, bool)，
// 第二个返回值为 false 表示缺失；结果本身为 nil 也按缺失处理。
//
//  1. 基本用法
//     s := sequtil.Of(5, 4, 3, 1, 2)
//     m, _ := sequtil.Min(s) // 1
//     sequtil.Sum(s)         // 15
//
//  2. 按字段取最值，字段可能没有
//     type Item struct{ A *int }
//     v, err := sequtil.MinOf(items, sequtil.Deref(func(it Item) *int { return it.A }))
//
//  3. 去重保留第一个，建映射保留最后一个
//     sequtil.DistinctBy(s, func(p Person) string { return p.Name })
//     sequtil.AssociateBy(s, func(p Person) string { return p.Name })
//
//  4. StreamBuilder 链式调用
//     total := sequtil.NewNumberStreamBuilder[int]().
//     Filter(func(n int) bool { return n%2 == 1 }).
//     Map(func(n int) int { return n * 10 }).
//     Sum([]int{1, 2, 3, 4, 5})
//     // 90
package sequtil
