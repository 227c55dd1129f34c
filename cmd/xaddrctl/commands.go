package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，统一映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createSanitizeCommand(),
		createRangeCommand(),
		createCheckCommand(),
		createClientCommand(),
	}
}

// createSanitizeCommand 创建 sanitize 子命令（剥离端口/括号/CIDR 后缀）。
func createSanitizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "sanitize",
		Aliases:   []string{"s"},
		Usage:     "剥离端口、方括号与 CIDR 后缀，输出裸地址",
		ArgsUsage: "<addr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "sanitize 需要且仅需要一个地址参数"}
			}
			fmt.Println(xaddr.SanitizeAddress(cmd.Args().First()))
			return nil
		},
	}
}

// createRangeCommand 创建 range 子命令（规范化范围并输出边界）。
func createRangeCommand() *cli.Command {
	return &cli.Command{
		Name:      "range",
		Aliases:   []string{"r"},
		Usage:     "规范化范围表达式并输出闭区间边界",
		ArgsUsage: "<expr>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "range 需要且仅需要一个范围表达式"}
			}
			out, err := describeRange(cmd.Args().First())
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			fmt.Print(out)
			return nil
		},
	}
}

// describeRange 返回范围表达式的规范形式与边界描述。
func describeRange(expr string) (string, error) {
	canon, err := xaddr.SanitizeRange(expr)
	if err != nil {
		return "", err
	}
	r, err := xaddr.RangeBounds(canon)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "规范形式: %s\n", canon)
	fmt.Fprintf(&b, "下界:     %s\n", xaddr.FormatBinary(r.Low))
	fmt.Fprintf(&b, "上界:     %s\n", xaddr.FormatBinary(r.High))
	return b.String(), nil
}

// createCheckCommand 创建 check 子命令（范围成员判断）。
// 设计决策: 不在范围内不是错误，而是用退出码 1 表达的判定结果
// （通过 exitError），便于脚本里直接用 `if xaddrctl check ...` 分支。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "判断地址是否落在任一范围内（退出码 0/1）",
		ArgsUsage: "<addr>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "range",
				Aliases: []string{"r"},
				Usage:   "范围表达式（可重复）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "check 需要且仅需要一个地址参数"}
			}
			exprs := cmd.StringSlice("range")
			if len(exprs) == 0 {
				return &usageError{msg: "check 至少需要一个 --range"}
			}
			ok, err := checkAddr(cmd.Args().First(), exprs)
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			if !ok {
				fmt.Println("不在范围内")
				return &exitError{code: 1}
			}
			fmt.Println("在范围内")
			return nil
		},
	}
}

// checkAddr 判断地址（可带端口/括号）是否落在任一范围表达式内。
// 范围表达式在此显式校验：非法表达式是参数错误，而非"不匹配"。
func checkAddr(rawAddr string, exprs []string) (bool, error) {
	set, err := xaddr.NewRangeSet(exprs)
	if err != nil {
		return false, err
	}
	bin, err := xaddr.ParseBinary(xaddr.SanitizeAddress(rawAddr))
	if err != nil {
		return false, err
	}
	return set.Contains(bin), nil
}

// createClientCommand 创建 client 子命令（转发链客户端地址选取）。
func createClientCommand() *cli.Command {
	return &cli.Command{
		Name:      "client",
		Usage:     "从逗号分隔地址链中选取最右侧未被排除的条目",
		ArgsUsage: "<list>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"x"},
				Usage:   "排除项：范围表达式或字面地址（可重复）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "client 需要且仅需要一个地址链参数"}
			}
			got := xaddr.LastNonExcluded(cmd.Args().First(), cmd.StringSlice("exclude"))
			if got == "" {
				// 链上所有条目都被排除
				return &exitError{code: 1}
			}
			fmt.Println(got)
			return nil
		},
	}
}
