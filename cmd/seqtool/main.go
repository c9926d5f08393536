package main

import (
	"fmt"
	"os"

	"seq_tool/pkg/errorutil"
	"seq_tool/pkg/logutil"
	"seq_tool/pkg/seqcmd"
)

const TOOL_VERSION = "1.0.0+20261019"

func main() {
	rootCmd := seqcmd.NewRootCmd(TOOL_VERSION)

	if err := rootCmd.Execute(); err != nil {
		code := errorutil.ExitCodeFromError(err)
		// --check 的结果为空不算失败，只通过退出码告诉调用方
		if code != errorutil.CodeAbsent {
			logutil.Error("命令执行失败: %v", err)
			msg, _ := errorutil.FormatErrorAndCode(err)
			fmt.Fprintln(os.Stderr, msg)
		}
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}
