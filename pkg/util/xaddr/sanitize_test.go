package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare IPv4",
			input: "192.168.1.1",
			want:  "192.168.1.1",
		},
		{
			name:  "IPv4 with port",
			input: "192.168.1.1:8080",
			want:  "192.168.1.1",
		},
		{
			name:  "IPv4 with CIDR suffix",
			input: "192.168.1.0/24",
			want:  "192.168.1.0",
		},
		{
			name:  "IPv4 with port and CIDR suffix",
			input: "10.0.0.1:443/32",
			want:  "10.0.0.1",
		},
		{
			name:  "bracketed IPv6 with port",
			input: "[2001:5c0:1000:b::90f8]:80",
			want:  "2001:5c0:1000:b::90f8",
		},
		{
			name:  "bracketed IPv6 without port",
			input: "[::1]",
			want:  "::1",
		},
		{
			name:  "bracketed IPv6 with embedded IPv4 and port",
			input: "[::ffff:192.168.1.1]:443",
			want:  "::ffff:192.168.1.1",
		},
		{
			name:  "bare IPv6",
			input: "2001:db8::1",
			want:  "2001:db8::1",
		},
		{
			name:  "bare IPv6 full form",
			input: "2001:db8:0:0:0:0:0:1",
			want:  "2001:db8:0:0:0:0:0:1",
		},
		{
			name:  "IPv6 with embedded IPv4 tail no brackets",
			input: "::ffff:192.168.1.1",
			want:  "::ffff:192.168.1.1",
		},
		{
			name:  "hostname",
			input: "example.com",
			want:  "example.com",
		},
		{
			name:  "hostname with port",
			input: "example.com:8080",
			want:  "example.com",
		},
		{
			name:  "single-label host with port",
			input: "localhost:3000",
			want:  "localhost",
		},
		{
			name:  "surrounding whitespace",
			input: "  10.0.0.1  ",
			want:  "10.0.0.1",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "unmatched bracket best effort",
			input: "[2001:db8::1",
			want:  "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeAddress(tt.input))
		})
	}
}

// 决策表的四个维度各自独立可测：这里覆盖形态分类本身。
func TestShapeOf(t *testing.T) {
	sh := shapeOf("[::1]:80")
	assert.True(t, sh.hasBrackets)

	sh = shapeOf("1.2.3.4:80")
	assert.True(t, sh.hasDot)
	assert.True(t, sh.colonAfterLastDot)
	assert.Equal(t, 1, sh.colonCount)

	sh = shapeOf("::ffff:1.2.3.4")
	assert.True(t, sh.hasDot)
	assert.False(t, sh.colonAfterLastDot)
	assert.Equal(t, 3, sh.colonCount)

	sh = shapeOf("2001:db8::1")
	assert.False(t, sh.hasDot)
	assert.Equal(t, 3, sh.colonCount)
}

func TestSanitizeRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "single IPv4 defaults to full width",
			input: "10.0.0.1",
			want:  "10.0.0.1/32",
		},
		{
			name:  "single IPv6 defaults to full width",
			input: "2001:db8::1",
			want:  "2001:db8::1/128",
		},
		{
			name:  "explicit CIDR",
			input: "192.168.1.0/24",
			want:  "192.168.1.0/24",
		},
		{
			name:  "IPv6 CIDR",
			input: "2001:db8::/32",
			want:  "2001:db8::/32",
		},
		{
			name:  "trailing wildcard",
			input: "192.168.2.*",
			want:  "192.168.2.0/24",
		},
		{
			name:  "two trailing wildcards",
			input: "10.1.*.*",
			want:  "10.1.0.0/16",
		},
		{
			name:  "all wildcards",
			input: "*.*.*.*",
			want:  "0.0.0.0/0",
		},
		{
			name:  "surrounding whitespace",
			input: "  192.168.2.*  ",
			want:  "192.168.2.0/24",
		},
		{
			name:    "wildcard before concrete octet",
			input:   "*.*.*.1",
			wantErr: true,
		},
		{
			name:    "wildcard glued to digit",
			input:   "192.168.2.*1",
			wantErr: true,
		},
		{
			name:    "wildcard with CIDR suffix",
			input:   "192.168.*.0/16",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "prefix bits above IPv4 width",
			input:   "192.168.1.0/33",
			wantErr: true,
		},
		{
			name:    "prefix bits above IPv6 width",
			input:   "2001:db8::/129",
			wantErr: true,
		},
		{
			name:    "negative prefix bits",
			input:   "192.168.1.0/-1",
			wantErr: true,
		},
		{
			name:    "non-numeric prefix bits",
			input:   "192.168.1.0/abc",
			wantErr: true,
		},
		{
			name:    "internal whitespace in prefix",
			input:   "192.168.1.0/ 24",
			wantErr: true,
		},
		{
			name:    "invalid address",
			input:   "999.1.1.1/8",
			wantErr: true,
		},
		{
			name:    "hostname",
			input:   "example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
