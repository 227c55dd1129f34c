// Package xaddr 提供 IP 地址规范化与范围运算工具库。
//
// xaddr 将人工书写的地址字符串（IPv4、IPv6、带端口、带括号、带 CIDR 后缀、
// 带通配符八位段）转换为定长二进制形式（IPv4 为 4 字节，IPv6 为 16 字节），
// 计算 CIDR 块的闭区间上下界，并判断地址是否落在一个或多个范围内。
//
// # 核心功能
//
//   - sanitize.go: [SanitizeAddress] 剥离端口/括号/CIDR 后缀，
//     [SanitizeRange] 将范围表达式（含通配符）规范化为 "address/bits"
//   - convert.go: [ParseBinary] / [ToBinary] 字符串转二进制，
//     [FormatBinary] 二进制转字符串，[Family] 地址族判断
//   - bounds.go: [RangeBounds] 计算 CIDR 的 (low, high) 二进制边界，[Range] 类型
//   - contains.go: [InRange] / [InRangeExprs] 范围成员判断
//   - rangeset.go: [RangeSet] 基于 [*netipx.IPSet] 的批量范围集合，O(log n) 查询
//   - forward.go: [LastNonExcluded] 从逗号分隔地址链中选取最右侧未被排除的条目
//
// # 两种错误策略
//
// 本包刻意保留两套互不混用的错误策略：
//
//   - 软失败（哨兵值）：[ToBinary] 与 [FormatBinary] 对任何非法输入返回
//     全零 4 字节 / "0.0.0.0" 哨兵，从不返回 error。这是历史兼容契约，
//     上游调用方按此组装处理管线，不做逐调用校验。
//   - 显式失败：[SanitizeRange]、[RangeBounds] 与 [NewRangeSet] 对非法
//     范围表达式返回包装了 [ErrInvalidRange] 的 error，支持 errors.Is。
//     静默返回伪造范围会污染成员判断，因此范围路径不使用哨兵。
//
// 需要显式失败的地址解析请使用 [ParseBinary]（返回 [ErrInvalidAddress]）。
//
// # 快速示例
//
// 剥离端口与括号：
//
//	xaddr.SanitizeAddress("[2001:5c0:1000:b::90f8]:80")  // "2001:5c0:1000:b::90f8"
//	xaddr.SanitizeAddress("192.168.1.10:8080")           // "192.168.1.10"
//
// 范围规范化与边界计算：
//
//	xaddr.SanitizeRange("192.168.2.*")        // "192.168.2.0/24", nil
//	r, _ := xaddr.RangeBounds("192.168.1.127/29")
//	// r.Low = C0.A8.01.78, r.High = C0.A8.01.7F
//
// 成员判断：
//
//	addr := xaddr.ToBinary("192.168.1.10")
//	xaddr.InRangeExprs(addr, []string{"192.168.1.10/31"})  // true
//
// # 设计决策
//
//   - 二进制地址使用原始 []byte（长度恒为 4 或 16），低位与高位边界按
//     大端无符号字节序比较，IPv4 与 IPv6 共用同一套掩码算法
//   - 端口/括号判定使用显式形态决策表（见 sanitize.go addrShape），
//     而非嵌套条件，每条判定规则可独立测试
//   - 拒绝包含 IPv6 zone ID 的地址（如 "fe80::1%eth0"）：二进制形式
//     无法携带 zone，静默丢弃会导致范围匹配误判
//   - 纯 IPv4（4 字节）与 IPv4-mapped IPv6（16 字节）在成员判断中永不
//     互相匹配：长度不同的范围直接跳过
//
// # 历史兼容行为
//
// [FormatBinary] 对 16 字节输入保留一段遗留窄化规则：前 10 字节全零时，
// IPv4-mapped（字节 10-11 为 0xFFFF）与 IPv4-compatible（字节 10-11 为
// 0x0000 且地址不是 :: / ::1）两种形态仅渲染末 4 字节的点分十进制；
// 该区域内的其他形态（包括 ::、::1 以及字节 10-11 为 0x0001 的地址）
// 一律坍缩为 "0.0.0.0" 哨兵。此行为是历史契约，必须逐字节复现；
// 其余 16 字节地址按标准 RFC 5952 文本渲染，保证二进制↔文本往返。
//
// # 并发安全
//
// 所有函数均为纯函数，只读取自身入参与栈上缓冲，可在任意 goroutine
// 中并发调用，无需任何同步。[RangeSet] 构建后不可变，同样并发安全。
package xaddr
