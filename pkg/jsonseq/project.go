package jsonseq

import (
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// project 按路径取值，空路径返回元素本身
func project(res gjson.Result, path string) gjson.Result {
	if path == "" {
		return res
	}
	return res.Get(path)
}

func isAbsent(res gjson.Result) bool {
	return !res.Exists() || res.Type == gjson.Null
}

// numberAt 只有 JSON 数字算有定义的值，其它类型和缺失一样跳过
// 超出 float64 范围的字面量(1e400)解析出来是 Inf，也按缺失处理
func numberAt(path string) func(gjson.Result) (float64, bool) {
	return func(res gjson.Result) (float64, bool) {
		v := project(res, path)
		if v.Type != gjson.Number || math.IsInf(v.Num, 0) || math.IsNaN(v.Num) {
			return 0, false
		}
		return v.Num, true
	}
}

func keyAt(path string) func(gjson.Result) Key {
	return func(res gjson.Result) Key {
		return KeyOf(project(res, path))
	}
}

// valueAt 给 MapNotNull 用，缺失和 null 都丢掉
func valueAt(path string) func(gjson.Result) (gjson.Result, bool) {
	return func(res gjson.Result) (gjson.Result, bool) {
		v := project(res, path)
		if isAbsent(v) {
			return gjson.Result{}, false
		}
		return v, true
	}
}

// Where 把 gjson 的查询条件编译成谓词，例如 `age>30`、`name=="bob"`、`tags.#>1`
// 标量数组省略路径即可: `>3`、`=="x"`
// 只写路径不写运算符表示该路径存在；空条件表示元素本身不是 null
func Where(cond string) func(gjson.Result) bool {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return func(res gjson.Result) bool { return !isAbsent(res) }
	}
	query := "#(" + cond + ")"
	return func(res gjson.Result) bool {
		// 把单个元素包成一元数组，借用 gjson 的数组查询求值
		return gjson.Get("["+res.Raw+"]", query).Exists()
	}
}
