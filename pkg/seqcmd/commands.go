package seqcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seq_tool/pkg/errorutil"
	"seq_tool/pkg/initutil"
	"seq_tool/pkg/jsonseq"
	"seq_tool/pkg/logutil"
)

// rootOptions 全局参数，和配置文件合并后的结果放在 cfg 里
type rootOptions struct {
	logLevel   logutil.Level
	logFile    string
	configPath string
	cfg        initutil.Config
}

// NewRootCmd 构建 seqtool 的根命令，每个序列操作一个子命令
func NewRootCmd(version string) *cobra.Command {
	ropts := &rootOptions{logLevel: logutil.WARN, cfg: initutil.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "seqtool",
		Short: fmt.Sprintf("seqtool v%s 对 JSON 数组做序列操作(过滤、极值、求和、去重、映射)", version),
		Long: fmt.Sprintf(`seqtool v%s 对 JSON 数组做序列操作

输入是一个 JSON 数组，-s 直接给出，-i 指定文件，都不给时读标准输入。
-p 是 gjson 路径，用来从每个元素里取值；-w 是 gjson 查询条件，用来筛选元素。
null 和取不到的值统一视为缺失。

Examples:
  seqtool max -s '[3,1,2]'
  seqtool minby -p age -i people.json
  seqtool first -w 'age>30' -i people.json -t sh -v oldest
  seqtool associateby -p id -t txt -i items.json
`, version),
		Version: version,
		// 阻止 Cobra 在命令参数错误时输出帮助
		SilenceUsage: true,
		// 阻止Cobra自动打印RunEs返回的错误内容
		SilenceErrors: true,
	}

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&ropts.logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&ropts.logFile, "log-file", "l", "seqtool.log", "日志文件名(stdout 表示标准输出)")
	rootCmd.PersistentFlags().StringVarP(&ropts.configPath, "config", "c", "", "YAML 配置文件路径")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "参数错误", err)
	})

	// PersistentPreRunE 在 flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := initutil.Load(ropts.configPath)
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "加载配置失败", err)
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = ropts.logLevel.String()
		}
		if flags.Changed("log-file") {
			cfg.LogFile = ropts.logFile
		}
		if err := initutil.InitSystem(cfg); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "初始化日志失败", err)
		}
		ropts.cfg = cfg
		return nil
	}

	for _, op := range opTable {
		rootCmd.AddCommand(newOpCmd(op, ropts))
	}
	return rootCmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			fmt.Sprintf("%s 不接受位置参数: %q", cmd.CommandPath(), args), nil)
	}
	return nil
}

func newOpCmd(op opSpec, ropts *rootOptions) *cobra.Command {
	opts := &CLIOptions{Format: FormatJSON, JSONFormat: JSONFormatMul}

	cmd := &cobra.Command{
		Use:   op.name,
		Short: op.short,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyConfig(cmd, opts, ropts.cfg)
			return runOp(cmd, op, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Input, "input", "i", "", "输入文件(- 或不指定表示标准输入)")
	flags.StringVarP(&opts.StrInput, "str", "s", "", "直接从参数读取 JSON 数组")
	if op.usesPath {
		flags.StringVarP(&opts.Path, "path", "p", "", "gjson 路径，为空表示元素本身")
	}
	if op.usesWhere {
		flags.StringVarP(&opts.Where, "where", "w", "", "gjson 查询条件，例如 'age>30'")
	}
	if op.name == "toset" {
		flags.BoolVar(&opts.Sorted, "sorted", false, "按 null<bool<数字<字符串<对象 排序输出")
	}
	flags.VarP(&opts.Format, "format", "t", "输出格式(json/txt/sh)")
	flags.VarP(&opts.JSONFormat, "jsonformat", "F", "JSON 输出样式(mul 多行/one 单行)")
	flags.StringVarP(&opts.VarName, "var", "v", "RESULT", "sh 格式下的变量名")
	flags.BoolVarP(&opts.Human, "human", "H", false, "数字按千分位输出(txt/sh)")
	flags.BoolVar(&opts.Check, "check", false, "结果为 null 或 false 时退出码为 1")
	return cmd
}

// applyConfig 命令行没有显式指定的参数使用配置里的值
func applyConfig(cmd *cobra.Command, opts *CLIOptions, cfg initutil.Config) {
	flags := cmd.Flags()
	if !flags.Changed("format") {
		opts.Format = OutputFormat(strings.ToLower(cfg.Format))
	}
	if !flags.Changed("jsonformat") {
		opts.JSONFormat = JSONFormat(strings.ToLower(cfg.JSONFormat))
	}
	if !flags.Changed("human") {
		opts.Human = cfg.Human
	}
}

func runOp(cmd *cobra.Command, op opSpec, opts *CLIOptions) error {
	data, err := opts.readInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	arr, err := jsonseq.ParseBytes(data)
	if err != nil {
		return fromSeqError(err)
	}
	logutil.Debug("%s: %d 个元素, path=%q where=%q", op.name, arr.Len(), opts.Path, opts.Where)

	res, err := op.run(arr, opts)
	if err != nil {
		return fromSeqError(fmt.Errorf("%s: %w", op.name, err))
	}

	formatter, ok := formatters[opts.Format]
	if !ok {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, fmt.Sprintf("无效的输出格式: %s", opts.Format), nil)
	}
	if err := formatter.Format(cmd.OutOrStdout(), res, opts); err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "输出结果失败", err)
	}

	if opts.Check && res.Falsy() {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeAbsent, fmt.Sprintf("%s: 结果为空", op.name), nil)
	}
	return nil
}
