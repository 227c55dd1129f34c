package xaddr

import (
	"slices"
	"strings"
)

// LastNonExcluded 从逗号分隔的地址链中选取最右侧未被排除的条目。
// 典型用途：从代理转发链（如 X-Forwarded-For）中剔除已知代理，
// 得到真实客户端地址。
//
// 规则：
//   - 输入不含逗号时，直接返回去除首尾空白的原串（不做排除判断）
//   - 否则从末尾向前逐条扫描：条目先经 [SanitizeAddress] 清洗，
//     清洗结果是 excluded 的字面成员、或其二进制形式落在 excluded
//     中任一可解析范围内时跳过；否则返回该清洗结果
//   - 全部被排除时返回空串。尾随逗号产生一个空条目，空串通常不被
//     排除，因此"a, b,"会返回空串，这是刻意保留的历史行为
//
// 范围判断沿用软失败转换：无法解析的条目（如主机名）二进制形式为
// 全零哨兵，会命中覆盖 0.0.0.0 的排除范围。该行为与历史实现一致，
// 调用方若需严格语义应预先过滤非地址条目。
func LastNonExcluded(list string, excluded []string) string {
	if !strings.Contains(list, ",") {
		return strings.TrimSpace(list)
	}
	parts := strings.Split(list, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		cand := SanitizeAddress(parts[i])
		if isExcluded(cand, excluded) {
			continue
		}
		return cand
	}
	return ""
}

// LastNonExcludedSet 是 [LastNonExcluded] 的预编译变体：
// 排除范围以 [RangeSet] 给出，字面排除项以 literals 给出。
// 适合排除列表较大且被反复使用的场景（构建一次，逐请求查询）。
func LastNonExcludedSet(list string, set *RangeSet, literals []string) string {
	if !strings.Contains(list, ",") {
		return strings.TrimSpace(list)
	}
	parts := strings.Split(list, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		cand := SanitizeAddress(parts[i])
		if slices.Contains(literals, cand) || set.Contains(ToBinary(cand)) {
			continue
		}
		return cand
	}
	return ""
}

func isExcluded(addr string, excluded []string) bool {
	if slices.Contains(excluded, addr) {
		return true
	}
	bin := ToBinary(addr)
	for _, ex := range excluded {
		r, err := RangeBounds(ex)
		if err != nil {
			continue
		}
		if r.Contains(bin) {
			return true
		}
	}
	return false
}
