// xaddrctl 是 xaddr 地址工具库的命令行前端。
//
// 用法:
//
//	xaddrctl <命令> [命令参数]
//
// 命令:
//
//	sanitize <addr>                  剥离端口/括号/CIDR 后缀，输出裸地址
//	range <expr>                     规范化范围表达式并输出二进制边界
//	check -r <expr> [-r ...] <addr>  判断地址是否落在任一范围内
//	client -x <expr> [-x ...] <list> 从逗号分隔地址链中选取最右侧未被排除的条目
//	help                             显示帮助信息
//
// 退出码:
//
//	0: 命令执行成功（check 命令: 地址在范围内）
//	1: 命令执行失败（check 命令: 地址不在范围内）
//	2: 参数错误（缺少参数、非法范围表达式、未知命令等）
//
// 示例:
//
//	xaddrctl sanitize "[2001:db8::1]:443"              # 2001:db8::1
//	xaddrctl range "192.168.2.*"                       # 192.168.2.0/24 及其边界
//	xaddrctl check -r 10.0.0.0/8 10.20.30.40           # 退出码 0
//	xaddrctl client -x 10.0.0.0/8 "1.2.3.4, 10.0.0.5"  # 1.2.3.4
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xaddrctl",
		Usage:          "IP 地址规范化与范围运算工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"ipkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）同样映射到退出码 2
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
