package xaddr

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// RangeSet 是若干范围表达式编译后的不可变集合，基于 [*netipx.IPSet]，
// 重叠与相邻范围自动合并，成员查询为 O(log n)。
// 适合排除列表、ACL 这类"一次构建、反复查询"的场景；
// 零散的一次性判断用 [InRangeExprs] 即可。
type RangeSet struct {
	set *netipx.IPSet
}

// NewRangeSet 编译范围表达式集合。
// 每个表达式先经 [RangeBounds] 求出二进制边界，再加入集合，
// 因此与逐条 [Range.Contains] 判断的语义完全一致。
// 任一表达式非法即整体失败，错误可用 errors.Is 匹配 [ErrInvalidRange]。
// 空切片或 nil 返回空集合（非 nil，查询恒为 false）。
func NewRangeSet(exprs []string) (*RangeSet, error) {
	var b netipx.IPSetBuilder
	for _, e := range exprs {
		r, err := RangeBounds(e)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", e, err)
		}
		from, _ := addrFromBinary(r.Low)
		to, _ := addrFromBinary(r.High)
		b.AddRange(netipx.IPRangeFrom(from, to))
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return &RangeSet{set: set}, nil
}

// Contains 报告二进制地址 addr 是否落在集合内。
// 长度非 4/16 的输入恒为 false。地址族隔离与 [Range.Contains] 一致：
// 4 字节地址不会命中 16 字节范围，反之亦然。
func (rs *RangeSet) Contains(addr []byte) bool {
	if rs == nil || rs.set == nil {
		return false
	}
	a, ok := addrFromBinary(addr)
	if !ok {
		return false
	}
	return rs.set.Contains(a)
}

// Ranges 返回集合合并后的范围列表（已排序、互不重叠）。
func (rs *RangeSet) Ranges() []Range {
	if rs == nil || rs.set == nil {
		return nil
	}
	ipRanges := rs.set.Ranges()
	out := make([]Range, len(ipRanges))
	for i, r := range ipRanges {
		out[i] = Range{Low: binaryFromAddr(r.From()), High: binaryFromAddr(r.To())}
	}
	return out
}

// addrFromBinary 将 4/16 字节二进制地址转换为 [netip.Addr]。
// 16 字节输入不做 unmap：IPv4-mapped 形式保持 IPv6 族，
// 从而在 [netipx.IPSet] 内与纯 IPv4 范围天然隔离。
func addrFromBinary(b []byte) (netip.Addr, bool) {
	switch len(b) {
	case 4:
		var a [4]byte
		copy(a[:], b)
		return netip.AddrFrom4(a), true
	case 16:
		var a [16]byte
		copy(a[:], b)
		return netip.AddrFrom16(a), true
	default:
		return netip.Addr{}, false
	}
}

// binaryFromAddr 是 addrFromBinary 的逆转换。
func binaryFromAddr(a netip.Addr) []byte {
	if a.Is4() {
		b := a.As4()
		return b[:]
	}
	b := a.As16()
	return b[:]
}
