// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xaddr: IP 地址规范化与范围运算，字符串清洗、定长二进制转换、
//     CIDR 边界计算、范围成员判断与转发链客户端地址选取
//
// 设计原则：
//   - 纯函数优先，不持有共享可变状态
//   - 显式错误与历史兼容的哨兵策略互不混用
//   - 跨平台兼容
package util
