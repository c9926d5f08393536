package jsonseq

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"seq_tool/pkg/sequtil"
)

// joinRaw 把元素原文拼成 JSON 数组
func joinRaw(s sequtil.Stream[gjson.Result]) string {
	raws := sequtil.Map(s, func(res gjson.Result) string { return res.Raw }).ToSlice()
	return "[" + strings.Join(raws, ",") + "]"
}

// entryJSON 渲染 {"key":K,"value":V}，key 缺失时不写 key 成员
func entryJSON(k Key, value gjson.Result) (string, error) {
	entry := "{}"
	var err error
	if k.Kind != KindMissing {
		if entry, err = sjson.SetRaw(entry, "key", k.Raw()); err != nil {
			return "", err
		}
	}
	return sjson.SetRaw(entry, "value", value.Raw)
}

// FormatNumber 数字按 JSON 的方式输出，不带多余的 0
// JSON 没有 Inf 和 NaN，求和溢出之类的结果输出 null
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "null"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
