package xaddr

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xaddr: invalid IP address")

	// ErrInvalidRange 表示无效的 IP 范围表达式。
	ErrInvalidRange = errors.New("xaddr: invalid IP range")
)
