package jsonseq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"seq_tool/pkg/jsonseq"
	"seq_tool/pkg/sequtil"
)

func mustParse(t *testing.T, raw string) jsonseq.Array {
	t.Helper()
	arr, err := jsonseq.Parse(raw)
	require.NoError(t, err)
	return arr
}

func TestParse(t *testing.T) {
	arr := mustParse(t, `[1, "a", null, {"x":1}]`)
	assert.Equal(t, 4, arr.Len())
	assert.JSONEq(t, `[1,"a",null,{"x":1}]`, arr.JSON())

	_, err := jsonseq.Parse(`{"a":1}`)
	assert.ErrorIs(t, err, jsonseq.ErrNotArray)

	_, err = jsonseq.Parse(`[1,`)
	assert.ErrorIs(t, err, jsonseq.ErrInvalidJSON)

	empty := mustParse(t, `[]`)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, `[]`, empty.JSON())
}

func TestAnyNoneWhere(t *testing.T) {
	arr := mustParse(t, `[{"a":1,"name":"x"},{"a":5},{"b":2}]`)

	tests := []struct {
		cond string
		any  bool
	}{
		{"a>3", true},
		{"a>10", false},
		{`name=="x"`, true},
		{`name=="y"`, false},
		{"b", true},
		{"c", false},
	}
	for _, tt := range tests {
		t.Run(tt.cond, func(t *testing.T) {
			assert.Equal(t, tt.any, arr.Any(tt.cond))
			assert.Equal(t, !tt.any, arr.None(tt.cond))
		})
	}

	assert.False(t, mustParse(t, `[]`).Any("a>0"))
	assert.True(t, mustParse(t, `[]`).None("a>0"))
}

func TestWhereScalars(t *testing.T) {
	arr := mustParse(t, `[1, 2, 7, null]`)
	assert.True(t, arr.Any(">5"))
	assert.False(t, arr.Any(">9"))

	notNull := jsonseq.Where("")
	assert.False(t, notNull(gjson.Parse(`null`)))
	assert.True(t, notNull(gjson.Parse(`0`)))
}

func TestFirstLast(t *testing.T) {
	arr := mustParse(t, `[{"a":1},{"a":5,"n":1},{"a":7,"n":2},{"a":2}]`)

	assert.JSONEq(t, `{"a":1}`, arr.First("").Raw)
	assert.JSONEq(t, `{"a":2}`, arr.Last("").Raw)
	assert.JSONEq(t, `{"a":5,"n":1}`, arr.First("a>3").Raw)
	assert.JSONEq(t, `{"a":7,"n":2}`, arr.Last("a>3").Raw)
	assert.False(t, arr.First("a>100").Exists())
	assert.False(t, arr.Last("a>100").Exists())

	empty := mustParse(t, `[]`)
	assert.False(t, empty.First("").Exists())
	assert.False(t, empty.Last("").Exists())
}

func TestMinMax(t *testing.T) {
	arr := mustParse(t, `[5,4,3,1,2]`)
	m, err := arr.Min()
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	m, err = arr.Max()
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	_, err = mustParse(t, `[]`).Min()
	assert.ErrorIs(t, err, sequtil.ErrEmptyInput)
}

func TestMinMaxSkipsNonNumeric(t *testing.T) {
	arr := mustParse(t, `[null, 8, "x", -2, {"a":1}, 3]`)
	m, err := arr.Min()
	require.NoError(t, err)
	assert.Equal(t, -2.0, m)

	m, err = arr.Max()
	require.NoError(t, err)
	assert.Equal(t, 8.0, m)

	// 原始数组不为空，但是过滤后没有数字，仍然是空输入
	_, err = mustParse(t, `[null, "x"]`).Max()
	assert.ErrorIs(t, err, sequtil.ErrEmptyInput)
}

func TestMinOfMaxOf(t *testing.T) {
	arr := mustParse(t, `[{"a":5},{"a":-4},{"b":-3},{"a":1},{"a":2}]`)

	m, err := arr.MinOf("a")
	require.NoError(t, err)
	assert.Equal(t, -4.0, m)

	m, err = arr.MaxOf("a")
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	_, err = mustParse(t, `[{"b":5},{"a":null}]`).MinOf("a")
	assert.ErrorIs(t, err, sequtil.ErrEmptyInput)
}

func TestMinByMaxBy(t *testing.T) {
	arr := mustParse(t, `[{"a":3,"n":0},{"b":-9},{"a":-1,"n":1},{"a":-1,"n":2},{"a":6,"n":3},{"a":6,"n":4}]`)

	r, err := arr.MinBy("a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Get("n").Int())

	r, err = arr.MaxBy("a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.Get("n").Int())

	_, err = mustParse(t, `[]`).MinBy("a")
	assert.ErrorIs(t, err, sequtil.ErrEmptyInput)

	_, err = mustParse(t, `[{"b":5},{"b":-4}]`).MaxBy("a")
	assert.ErrorIs(t, err, sequtil.ErrNoQualifyingValue)
}

func TestMinByOrNull(t *testing.T) {
	// maxByOrNull([{b:5},{b:-4}], x=>x.a) == null
	arr := mustParse(t, `[{"b":5},{"b":-4}]`)
	assert.False(t, arr.MaxByOrNull("a").Exists())
	assert.False(t, arr.MinByOrNull("a").Exists())
	assert.False(t, mustParse(t, `[]`).MinByOrNull("a").Exists())

	arr = mustParse(t, `[{"a":2},{"a":1}]`)
	assert.JSONEq(t, `{"a":1}`, arr.MinByOrNull("a").Raw)
	assert.JSONEq(t, `{"a":2}`, arr.MaxByOrNull("a").Raw)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, mustParse(t, `[]`).Sum())
	assert.Equal(t, 6.0, mustParse(t, `[1,2,null,3]`).Sum())

	arr := mustParse(t, `[{"a":1.5},{"b":10},{"a":null},{"a":2}]`)
	assert.Equal(t, 3.5, arr.SumOf("a"))
	assert.Equal(t, 0.0, arr.SumOf("zzz"))
}

func TestDistinct(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", `[]`, `[]`},
		{"NoDuplicates", `[1,2,3]`, `[1,2,3]`},
		{"DuplicateNumbers", `[1,1,2,3,3,3]`, `[1,2,3]`},
		{"DuplicateStrings", `["1","1","2","3","3","3"]`, `["1","2","3"]`},
		{"NumberVsString", `[1,"1",1.0,"1"]`, `[1,"1"]`},
		{"Objects", `[{"a":1},{ "a" : 1 },{"a":2}]`, `[{"a":1},{"a":2}]`},
		{"NullAndBool", `[null,false,null,true,false]`, `[null,false,true]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input).Distinct()
			assert.JSONEq(t, tt.want, got.JSON())
			assert.JSONEq(t, got.JSON(), got.Distinct().JSON())
		})
	}
}

func TestDistinctBy(t *testing.T) {
	arr := mustParse(t, `[{"a":1,"b":1},{"a":1,"b":2},{"a":2},{"a":3,"b":1},{"a":3,"b":2}]`)
	assert.JSONEq(t, `[{"a":1,"b":1},{"a":2},{"a":3,"b":1}]`, arr.DistinctBy("a").JSON())

	// missing 和 null 是两个不同的键
	arr = mustParse(t, `[{"n":0},{"a":null,"n":1},{"n":2},{"a":null,"n":3},{"a":0,"n":4}]`)
	assert.JSONEq(t, `[{"n":0},{"a":null,"n":1},{"a":0,"n":4}]`, arr.DistinctBy("a").JSON())
}

func TestFilterNotNullMapNotNull(t *testing.T) {
	arr := mustParse(t, `[1,null,"x",null,false]`)
	assert.JSONEq(t, `[1,"x",false]`, arr.FilterNotNull().JSON())

	objs := mustParse(t, `[{"a":1},{"a":null},{"b":2},{"a":{"c":3}}]`)
	assert.JSONEq(t, `[1,{"c":3}]`, objs.MapNotNull("a").JSON())
	assert.JSONEq(t, `[]`, mustParse(t, `[]`).MapNotNull("a").JSON())
}

func TestAssociateBy(t *testing.T) {
	arr := mustParse(t, `[{"a":"a"},{"a":"b"},{"a":"b","n":1}]`)
	as := arr.AssociateBy("a")
	assert.Equal(t, 2, as.Len())

	v, ok := as.Get(jsonseq.Key{Kind: jsonseq.KindString, Str: "b"})
	require.True(t, ok)
	assert.JSONEq(t, `{"a":"b","n":1}`, v.Raw)

	out, err := as.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"a","value":{"a":"a"}},{"key":"b","value":{"a":"b","n":1}}]`, out)
}

func TestAssociateByAbsentKeys(t *testing.T) {
	arr := mustParse(t, `[{"n":0},{"a":null,"n":1},{"n":2}]`)
	out, err := arr.AssociateBy("a").JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"value":{"n":2}},{"key":null,"value":{"a":null,"n":1}}]`, out)

	var keys []string
	arr.AssociateBy("a").Each(func(k jsonseq.Key, _ gjson.Result) {
		keys = append(keys, k.String())
	})
	assert.Equal(t, []string{"<missing>", "null"}, keys)
}

func TestToSet(t *testing.T) {
	arr := mustParse(t, `["b",1,"a",1,null,true,"b",{"x":1}]`)
	set := arr.ToSet()

	assert.Equal(t, 6, set.Len())
	assert.LessOrEqual(t, set.Len(), arr.Len())
	assert.True(t, set.Contains(gjson.Parse(`1.0`)))
	assert.False(t, set.Contains(gjson.Parse(`"1"`)))
	assert.JSONEq(t, `[null,true,1,"a","b",{"x":1}]`, set.SortedJSON())
	assert.Len(t, set.Keys(), 6)

	unique := mustParse(t, `[3,2,1]`).ToSet()
	assert.Equal(t, 3, unique.Len())
	assert.JSONEq(t, `[1,2,3]`, unique.SortedJSON())
}

func TestKeyRaw(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{`false`, `false`},
		{`1.50`, `1.5`},
		{`"a\"b"`, `"a\"b"`},
		{`{ "x" : [1, 2] }`, `{"x":[1,2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonseq.KeyOf(gjson.Parse(tt.raw)).Raw())
		})
	}

	missing := jsonseq.KeyOf(gjson.Get(`{}`, "a"))
	assert.Equal(t, jsonseq.KindMissing, missing.Kind)
	assert.True(t, missing.Absent())
	assert.Equal(t, "", missing.Raw())
	assert.NotEqual(t, missing, jsonseq.KeyOf(gjson.Parse(`null`)))
}

func TestOutOfRangeNumbers(t *testing.T) {
	// 1e400 超出 float64 范围，不参与数值运算
	arr := mustParse(t, `[1e400,2,-1e400]`)

	v, err := arr.Max()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, 2.0, arr.Sum())

	by, err := arr.MinBy("")
	require.NoError(t, err)
	assert.Equal(t, "2", by.Raw)

	_, err = mustParse(t, `[1e400]`).Min()
	assert.ErrorIs(t, err, sequtil.ErrEmptyInput)

	// 集合里保留原始字面量，输出仍然是合法 JSON
	out := arr.ToSet().SortedJSON()
	assert.True(t, gjson.Valid(out), out)
	assert.Equal(t, `[-1e400,2,1e400]`, out)

	assert.Equal(t, "null", jsonseq.FormatNumber(math.Inf(1)))
	assert.Equal(t, "null", jsonseq.FormatNumber(math.NaN()))
}

func TestKeyRawStringEscapes(t *testing.T) {
	for _, s := range []string{"<a&b>", "tab\there", `back\slash`, "中文", "line\nbreak"} {
		t.Run(s, func(t *testing.T) {
			raw := jsonseq.KeyOf(gjson.Parse(string(gjson.AppendJSONString(nil, s)))).Raw()
			require.True(t, gjson.Valid(raw), raw)
			assert.Equal(t, s, gjson.Parse(raw).Str)
		})
	}

	out := mustParse(t, `["<a&b>"]`).ToSet().JSON()
	assert.Equal(t, "<a&b>", gjson.Get(out, "0").Str)
}

func TestKeyStringDistinguishesLiterals(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`null`, `null`},
		{`"null"`, `"null"`},
		{`1`, `1`},
		{`"1"`, `"1"`},
		{`true`, `true`},
		{`"true"`, `"true"`},
		{`"plain"`, `plain`},
		{`"two words"`, `two words`},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonseq.KeyOf(gjson.Parse(tt.raw)).String())
		})
	}
	assert.Equal(t, "<missing>", jsonseq.KeyOf(gjson.Get(`{}`, "a")).String())

	// 内容恰好是 <missing> 的字符串带引号输出
	s := jsonseq.KeyOf(gjson.Parse(`"<missing>"`)).String()
	assert.NotEqual(t, "<missing>", s)
	assert.Equal(t, "<missing>", gjson.Parse(s).Str)
}
