package xaddr

// InRange 报告二进制地址 addr 是否落在任一范围内。
// 与 addr 地址族长度不同的范围直接跳过；没有任何范围匹配时返回 false。
func InRange(addr []byte, ranges []Range) bool {
	for _, r := range ranges {
		if r.Contains(addr) {
			return true
		}
	}
	return false
}

// InRangeExprs 报告二进制地址 addr 是否落在任一范围表达式内。
// 每个表达式经 [RangeBounds] 解析；解析失败的表达式视为永不匹配并跳过。
// 表达式会被重复解析，大量范围的热路径请改用 [RangeSet]。
func InRangeExprs(addr []byte, exprs []string) bool {
	for _, e := range exprs {
		r, err := RangeBounds(e)
		if err != nil {
			continue
		}
		if r.Contains(addr) {
			return true
		}
	}
	return false
}
