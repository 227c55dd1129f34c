package xaddr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Range 表示一个闭区间 IP 范围 [Low, High]。
// 不变量：Low 与 High 等长（4 或 16 字节），且按大端无符号字节序
// Low <= High。由 [RangeBounds] 构建的 Range 总是满足不变量；
// 手工构造的 Range 可用 [Range.IsValid] 校验。
type Range struct {
	Low  []byte
	High []byte
}

// RangeBounds 将范围表达式解析为二进制边界对。
//
// 表达式先经 [SanitizeRange] 规范化（通配符、缺省位数、位数校验都在
// 那一步完成），随后对地址做掩码运算：设 L 为地址字节长，
// hostbits = 8*L - prefix-bits，从最后一个字节向前，宿主位整字节在
// Low 中置 0x00、High 中置 0xFF；剩余 1~7 位的部分字节按位掩码清零/置一。
// IPv4 与 IPv6 共用同一算法，仅 L 不同。
//
// 非法表达式返回包装了 [ErrInvalidRange] 的错误。
func RangeBounds(expr string) (Range, error) {
	canon, err := SanitizeRange(expr)
	if err != nil {
		return Range{}, err
	}

	i := strings.LastIndexByte(canon, '/')
	addr, bitsStr := canon[:i], canon[i+1:]
	bits, err := strconv.Atoi(bitsStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid prefix bits %q", ErrInvalidRange, bitsStr)
	}
	bin, err := ParseBinary(addr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: invalid address %q", ErrInvalidRange, addr)
	}

	low := append([]byte(nil), bin...)
	high := append([]byte(nil), bin...)
	hostBits := len(bin)*8 - bits
	for i := len(bin) - 1; i >= 0 && hostBits > 0; i-- {
		if hostBits >= 8 {
			low[i] = 0x00
			high[i] = 0xFF
			hostBits -= 8
			continue
		}
		mask := byte(0xFF) << hostBits
		low[i] &= mask
		high[i] |= ^mask
		hostBits = 0
	}
	return Range{Low: low, High: high}, nil
}

// IsValid 报告 r 是否满足 Range 不变量。
func (r Range) IsValid() bool {
	if len(r.Low) != 4 && len(r.Low) != 16 {
		return false
	}
	return len(r.Low) == len(r.High) && bytes.Compare(r.Low, r.High) <= 0
}

// Version 返回范围所属的地址族（按 Low 的长度判断）。
func (r Range) Version() Version {
	return Family(r.Low)
}

// Contains 报告二进制地址 addr 是否落在 [Low, High] 闭区间内。
// addr 与范围长度不同（地址族不同）时恒为 false：纯 IPv4 与
// IPv4-mapped IPv6 即便文本可互相渲染，也刻意不互相匹配。
func (r Range) Contains(addr []byte) bool {
	if len(addr) != len(r.Low) || len(r.Low) == 0 {
		return false
	}
	return bytes.Compare(addr, r.Low) >= 0 && bytes.Compare(addr, r.High) <= 0
}

// String 返回范围的文本表示："low-high"，起止相同则只返回单个地址。
// 仅用于日志与调试，渲染遵循 [FormatBinary] 的遗留规则。
func (r Range) String() string {
	if bytes.Equal(r.Low, r.High) {
		return FormatBinary(r.Low)
	}
	return FormatBinary(r.Low) + "-" + FormatBinary(r.High)
}
