package xaddr

import (
	"fmt"
	"net/netip"
	"strconv"
)

// SentinelAddr 是软失败路径的文本哨兵值。
// [ToBinary] 与 [FormatBinary] 对非法输入返回对应的哨兵而非 error。
const SentinelAddr = "0.0.0.0"

// SentinelBinary 返回软失败路径的二进制哨兵值：全零 4 字节。
// 每次调用返回新切片，调用方可安全修改。
func SentinelBinary() []byte {
	return make([]byte, 4)
}

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Family 根据二进制地址长度返回其地址族。
// 长度 4 为 V4，长度 16 为 V6，其余一律 V0。
func Family(b []byte) Version {
	switch len(b) {
	case 4:
		return V4
	case 16:
		return V6
	default:
		return V0
	}
}

// ParseBinary 将地址字符串严格解析为定长二进制形式：
// IPv4 返回 4 字节，IPv6（含内嵌 IPv4 尾部与 :: 压缩）返回 16 字节。
// IPv4-mapped 文本（"::ffff:1.2.3.4"）按其书写形式返回 16 字节。
//
// 解析失败返回包装了 [ErrInvalidAddress] 的错误。拒绝 IPv6 zone ID
// （如 "fe80::1%eth0"）：二进制形式无法携带 zone，静默丢弃会导致
// 后续范围匹配误判。
//
// 这是 [ToBinary] 的显式失败变体，新代码应优先使用本函数。
func ParseBinary(raw string) ([]byte, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidAddress)
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if addr.Zone() != "" {
		return nil, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidAddress, raw)
	}
	if addr.Is4() {
		b := addr.As4()
		return b[:], nil
	}
	b := addr.As16()
	return b[:], nil
}

// ToBinary 将地址字符串转换为定长二进制形式。
//
// 软失败契约：任何解析失败（空串、八位段越界、多个 ::、非法十六进制组等）
// 都返回全零 4 字节哨兵（见 [SentinelBinary]），从不返回 error。
// 该行为是历史兼容契约，组装管线的调用方依赖它省去逐调用校验；
// 需要区分失败原因时使用 [ParseBinary]。
func ToBinary(raw string) []byte {
	b, err := ParseBinary(raw)
	if err != nil {
		return SentinelBinary()
	}
	return b
}

// FormatBinary 将定长二进制地址渲染为文本。
//
// 只接受恰好 4 字节或 16 字节的输入；其他长度（含 nil/空）返回
// [SentinelAddr] 哨兵。16 字节输入按标准 RFC 5952 文本渲染，但保留
// 一段遗留窄化规则：前 10 字节全零时进入嵌入式 IPv4 判定，
//
//	字节 10-11 = 0xFFFF（IPv4-mapped）    → 渲染末 4 字节点分十进制
//	字节 10-11 = 0x0000 且非 ::/::1      → 渲染末 4 字节点分十进制
//	该区域内其余形态（::、::1、0x0001 等）→ 返回 "0.0.0.0" 哨兵
//
// 坍缩规则是历史契约，必须原样保留（详见包文档"历史兼容行为"）。
func FormatBinary(b []byte) string {
	switch len(b) {
	case 4:
		return formatQuad(b)
	case 16:
		if !leading10Zero(b) {
			var arr [16]byte
			copy(arr[:], b)
			return netip.AddrFrom16(arr).String()
		}
		switch {
		case b[10] == 0xFF && b[11] == 0xFF:
			return formatQuad(b[12:])
		case b[10] == 0x00 && b[11] == 0x00 && !tailIsZeroOrOne(b):
			return formatQuad(b[12:])
		default:
			return SentinelAddr
		}
	default:
		return SentinelAddr
	}
}

// leading10Zero 报告 16 字节地址的前 10 字节是否全零。
func leading10Zero(b []byte) bool {
	for _, v := range b[:10] {
		if v != 0 {
			return false
		}
	}
	return true
}

// tailIsZeroOrOne 报告末 4 字节是否表示 0 或 1（即地址为 :: 或 ::1）。
// 调用方已保证前 12 字节全零。
func tailIsZeroOrOne(b []byte) bool {
	return b[12] == 0 && b[13] == 0 && b[14] == 0 && b[15] <= 1
}

func formatQuad(b []byte) string {
	buf := make([]byte, 0, 15)
	for i := range 4 {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(b[i]), 10)
	}
	return string(buf)
}
