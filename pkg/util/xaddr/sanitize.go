package xaddr

import (
	"fmt"
	"strconv"
	"strings"
)

// addrShape 描述地址字符串的词法形态，是端口/括号判定的显式决策表输入。
// 四个维度共同区分 "IPv4:端口"、"[IPv6]:端口"、"IPv6 内嵌 IPv4 尾部"
// 与裸 IPv6 四种易混形态。
type addrShape struct {
	hasBrackets       bool // 首字符为 '['
	colonCount        int  // ':' 出现次数
	hasDot            bool // 是否包含 '.'
	colonAfterLastDot bool // 最后一个 ':' 位于最后一个 '.' 之后
}

func shapeOf(s string) addrShape {
	lastColon := strings.LastIndexByte(s, ':')
	lastDot := strings.LastIndexByte(s, '.')
	return addrShape{
		hasBrackets:       strings.HasPrefix(s, "["),
		colonCount:        strings.Count(s, ":"),
		hasDot:            lastDot >= 0,
		colonAfterLastDot: lastColon > lastDot,
	}
}

// SanitizeAddress 剥离地址字符串中的 CIDR 后缀、端口与方括号，返回裸地址。
//
// 判定规则（按 addrShape 决策表）：
//
//	[...]          → 截取到配对的 ']'，丢弃其后内容（端口）
//	含 '.' 且最后一个 ':' 在最后一个 '.' 之后
//	               → IPv4 或主机名带端口，在最后一个 ':' 处截断
//	含 '.' 且最后一个 ':' 在最后一个 '.' 之前
//	               → IPv6 内嵌点分 IPv4 尾部，原样保留
//	无 '.' 且恰有一个 ':'
//	               → HOST:PORT，在 ':' 处截断
//	无 '.' 且多个 ':'
//	               → 裸 IPv6（无端口），原样保留
//
// 没有错误路径：任何畸形输入都尽力返回子串，合法性校验由下游的
// 二进制转换（[ParseBinary] / [ToBinary]）承担。主机名等非数值字符串
// 原样透传（仅按单冒号规则剥离端口）。
func SanitizeAddress(raw string) string {
	s := strings.TrimSpace(raw)

	// CIDR 后缀只做文本剥离，不在此校验位数
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}

	sh := shapeOf(s)
	switch {
	case sh.hasBrackets:
		if j := strings.IndexByte(s, ']'); j >= 0 {
			return s[1:j]
		}
		// 括号未配对：尽力剥掉左括号
		return s[1:]
	case sh.colonCount == 0:
		return s
	case sh.hasDot && sh.colonAfterLastDot:
		return s[:strings.LastIndexByte(s, ':')]
	case sh.hasDot:
		return s
	case sh.colonCount == 1:
		return s[:strings.IndexByte(s, ':')]
	default:
		return s
	}
}

// SanitizeRange 将范围表达式规范化为 "<address>/<prefix-bits>" 形式。
//
// 支持三类输入：
//   - 通配符: "192.168.2.*" → "192.168.2.0/24"。通配符必须独占一个
//     点分八位段，且必须构成连续的尾部（"*.*.*.1" 非法）
//   - CIDR: "10.0.0.0/8" → 原样校验后返回
//   - 单地址: "10.0.0.1" → 补全地址族全宽位数，如 "10.0.0.1/32"
//
// 输入首尾空白会被去除。空串、地址语法错误、位数越界均返回包装了
// [ErrInvalidRange] 的错误。
func SanitizeRange(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty expression", ErrInvalidRange)
	}

	bits := -1
	switch {
	case strings.ContainsRune(s, '*'):
		addr, wildBits, err := expandWildcards(s)
		if err != nil {
			return "", err
		}
		s, bits = addr, wildBits
	case strings.ContainsRune(s, '/'):
		i := strings.IndexByte(s, '/')
		n, err := strconv.Atoi(s[i+1:])
		if err != nil || n < 0 {
			return "", fmt.Errorf("%w: invalid prefix bits %q", ErrInvalidRange, s[i+1:])
		}
		s, bits = s[:i], n
	}

	bin, err := ParseBinary(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid address %q", ErrInvalidRange, s)
	}
	maxBits := len(bin) * 8
	if bits < 0 {
		bits = maxBits
	}
	if bits > maxBits {
		return "", fmt.Errorf("%w: prefix bits %d exceeds %d", ErrInvalidRange, bits, maxBits)
	}
	return s + "/" + strconv.Itoa(bits), nil
}

// expandWildcards 将通配符八位段替换为 0 并换算前缀位数。
// 规则：'*' 必须独占整个八位段，且一旦出现，其后所有八位段都必须是 '*'。
func expandWildcards(s string) (string, int, error) {
	parts := strings.Split(s, ".")
	stars := 0
	for i, p := range parts {
		switch {
		case p == "*":
			stars++
			parts[i] = "0"
		case strings.ContainsRune(p, '*'):
			// 通配符与数字同段，如 "*1" 或 "19*"
			return "", 0, fmt.Errorf("%w: wildcard must occupy a whole octet: %q", ErrInvalidRange, p)
		case stars > 0:
			// 通配符之后又出现具体八位段，如 "*.*.*.1"
			return "", 0, fmt.Errorf("%w: octet %q after wildcard", ErrInvalidRange, p)
		}
	}
	return strings.Join(parts, "."), 32 - 8*stars, nil
}
