package xaddr_test

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

func ExampleSanitizeAddress() {
	fmt.Println(xaddr.SanitizeAddress("192.168.1.10:8080"))
	fmt.Println(xaddr.SanitizeAddress("[2001:5c0:1000:b::90f8]:80"))
	fmt.Println(xaddr.SanitizeAddress("::ffff:192.168.1.1"))
	fmt.Println(xaddr.SanitizeAddress("example.com:443"))
	// Output:
	// 192.168.1.10
	// 2001:5c0:1000:b::90f8
	// ::ffff:192.168.1.1
	// example.com
}

func ExampleSanitizeRange() {
	canon, _ := xaddr.SanitizeRange("192.168.2.*")
	fmt.Println(canon)

	canon, _ = xaddr.SanitizeRange("10.0.0.1")
	fmt.Println(canon)

	_, err := xaddr.SanitizeRange("*.*.*.1")
	fmt.Println(err != nil)
	// Output:
	// 192.168.2.0/24
	// 10.0.0.1/32
	// true
}

func ExampleRangeBounds() {
	r, _ := xaddr.RangeBounds("192.168.1.127/29")
	fmt.Println(xaddr.FormatBinary(r.Low))
	fmt.Println(xaddr.FormatBinary(r.High))
	// Output:
	// 192.168.1.120
	// 192.168.1.127
}

func ExampleInRangeExprs() {
	addr := xaddr.ToBinary("192.168.1.10")
	fmt.Println(xaddr.InRangeExprs(addr, []string{"192.168.1.10/31"}))

	addr = xaddr.ToBinary("192.168.1.12")
	fmt.Println(xaddr.InRangeExprs(addr, []string{"192.168.1.10/31"}))
	// Output:
	// true
	// false
}

func ExampleLastNonExcluded() {
	// 从转发链中剔除内网代理，取真实客户端地址
	list := "203.0.113.7, 10.0.0.5, 10.0.0.9"
	fmt.Println(xaddr.LastNonExcluded(list, []string{"10.0.0.0/8"}))
	// Output:
	// 203.0.113.7
}

func ExampleNewRangeSet() {
	set, _ := xaddr.NewRangeSet([]string{
		"192.168.0.0/24",
		"192.168.1.0/24",
	})
	// 相邻范围自动合并
	for _, r := range set.Ranges() {
		fmt.Println(r)
	}
	fmt.Println(set.Contains(xaddr.ToBinary("192.168.1.200")))
	// Output:
	// 192.168.0.0-192.168.1.255
	// true
}
