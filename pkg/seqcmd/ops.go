package seqcmd

import (
	"seq_tool/pkg/jsonseq"
)

// opSpec 一个子命令对应一个序列操作
type opSpec struct {
	name  string
	short string
	// usesPath 为真时 -p 有意义，usesWhere 同理
	usesPath  bool
	usesWhere bool
	run       func(arr jsonseq.Array, opts *CLIOptions) (Result, error)
}

var opTable = []opSpec{
	{
		name: "any", short: "是否有元素满足 -w 条件(不带条件时判断是否有非 null 元素)", usesWhere: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return boolResult(arr.Any(opts.Where)), nil
		},
	},
	{
		name: "none", short: "是否没有元素满足 -w 条件", usesWhere: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return boolResult(arr.None(opts.Where)), nil
		},
	},
	{
		name: "first", short: "第一个(满足 -w 条件的)元素，没有时为 null", usesWhere: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return elementResult(arr.First(opts.Where)), nil
		},
	},
	{
		name: "last", short: "最后一个(满足 -w 条件的)元素，没有时为 null", usesWhere: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return elementResult(arr.Last(opts.Where)), nil
		},
	},
	{
		name: "min", short: "数字元素中的最小值",
		run: func(arr jsonseq.Array, _ *CLIOptions) (Result, error) {
			v, err := arr.Min()
			return numberResult(v), err
		},
	},
	{
		name: "max", short: "数字元素中的最大值",
		run: func(arr jsonseq.Array, _ *CLIOptions) (Result, error) {
			v, err := arr.Max()
			return numberResult(v), err
		},
	},
	{
		name: "minof", short: "-p 路径上数值的最小值，缺失和 null 跳过", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			v, err := arr.MinOf(opts.Path)
			return numberResult(v), err
		},
	},
	{
		name: "maxof", short: "-p 路径上数值的最大值，缺失和 null 跳过", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			v, err := arr.MaxOf(opts.Path)
			return numberResult(v), err
		},
	},
	{
		name: "minby", short: "-p 路径上数值最小的元素，并列时取最早出现的", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			v, err := arr.MinBy(opts.Path)
			return elementResult(v), err
		},
	},
	{
		name: "maxby", short: "-p 路径上数值最大的元素，并列时取最早出现的", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			v, err := arr.MaxBy(opts.Path)
			return elementResult(v), err
		},
	},
	{
		name: "minbyornull", short: "同 minby，找不到时输出 null 而不是报错", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return elementResult(arr.MinByOrNull(opts.Path)), nil
		},
	},
	{
		name: "maxbyornull", short: "同 maxby，找不到时输出 null 而不是报错", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return elementResult(arr.MaxByOrNull(opts.Path)), nil
		},
	},
	{
		name: "sum", short: "数字元素求和，空数组为 0",
		run: func(arr jsonseq.Array, _ *CLIOptions) (Result, error) {
			return numberResult(arr.Sum()), nil
		},
	},
	{
		name: "sumof", short: "-p 路径上数值求和，缺失和 null 跳过", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return numberResult(arr.SumOf(opts.Path)), nil
		},
	},
	{
		name: "distinct", short: "去重，保留第一次出现的顺序",
		run: func(arr jsonseq.Array, _ *CLIOptions) (Result, error) {
			return arrayResult(arr.Distinct().JSON()), nil
		},
	},
	{
		name: "distinctby", short: "按 -p 路径上的键去重，每个键保留第一个元素", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return arrayResult(arr.DistinctBy(opts.Path).JSON()), nil
		},
	},
	{
		name: "filternotnull", short: "去掉 null 元素",
		run: func(arr jsonseq.Array, _ *CLIOptions) (Result, error) {
			return arrayResult(arr.FilterNotNull().JSON()), nil
		},
	},
	{
		name: "mapnotnull", short: "取 -p 路径上的值，缺失和 null 丢弃", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return arrayResult(arr.MapNotNull(opts.Path).JSON()), nil
		},
	},
	{
		name: "associateby", short: "按 -p 路径上的键建立映射，同键后者覆盖前者", usesPath: true,
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			return mappingResult(arr.AssociateBy(opts.Path)), nil
		},
	},
	{
		name: "toset", short: "转成集合(无重复)，--sorted 按类型和值排序",
		run: func(arr jsonseq.Array, opts *CLIOptions) (Result, error) {
			set := arr.ToSet()
			if opts.Sorted {
				return arrayResult(set.SortedJSON()), nil
			}
			return arrayResult(set.JSON()), nil
		},
	},
}
