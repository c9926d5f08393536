package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Level 日志级别，值越小打印得越多
type Level int

// 定义日志级别
const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var levelTags = map[Level]string{
	DEBUG: "[DBG] ",
	INFO:  "[INFO] ",
	WARN:  "[WARN] ",
	ERROR: "[ERR] ",
}

// ParseLogLevel 大小写不敏感
func ParseLogLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for lv, n := range levelNames {
		if n == name {
			return lv, nil
		}
	}
	return WARN, fmt.Errorf("无效的日志等级: %q (可选 DEBUG/INFO/WARN/ERROR)", s)
}

// 为了让 cobra 的 VarP 接收自定义类型，实现 pflag.Value 接口(String Set Type)
func (l *Level) String() string {
	if n, ok := levelNames[*l]; ok {
		return n
	}
	return fmt.Sprintf("Level(%d)", int(*l))
}

func (l *Level) Set(val string) error {
	lv, err := ParseLogLevel(val)
	if err != nil {
		return err
	}
	*l = lv
	return nil
}

func (l *Level) Type() string {
	return "loglevel"
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，output 为 stdout 时打印到控制台，否则追加写入文件
// 重复调用会先关闭之前打开的文件
func InitLogger(output string, level Level) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	var w io.Writer
	if output == "stdout" || output == "" {
		w = os.Stdout
	} else {
		// 以追加模式打开日志文件，不会覆盖已有内容
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("无法创建日志文件 %s: %w", output, err)
		}
		logFile = f
		w = f
	}
	logger = log.New(w, "", log.LstdFlags)
	currentLevel = level
	return nil
}

// SetOutput 测试时把日志接到 buffer 上
func SetOutput(w io.Writer, level Level) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	logger = log.New(w, "", 0)
	currentLevel = level
}

// 设置日志级别
func SetLogLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

func GetLogLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

// logMessage 记录日志，仅输出符合当前级别的日志
func logMessage(level Level, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < currentLevel {
		return
	}
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags) // 默认输出到控制台
	}
	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	logger.Printf("%s[%s:%d] %s", levelTags[level], filepath.Base(file), line, fmt.Sprintf(msg, args...))
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, msg, args...)
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, msg, args...)
}

// Error 记录 ERROR 日志，附带当前 goroutine 的调用堆栈
func Error(msg string, args ...any) {
	size := 1024 // 初始缓冲区大小
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			// 堆栈放在参数里，避免其中的 % 被当成格式化字符
			logMessage(ERROR, msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}
		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = nil
	return err
}
