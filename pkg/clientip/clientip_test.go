package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sessionguard/sessionguard/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:54321",
			expected:   "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			expected:   "203.0.113.7",
		},
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Forwarded-For": "192.0.2.1"},
			remoteAddr: "203.0.113.7:54321",
			expected:   "198.51.100.1",
		},
		{
			name:       "x-forwarded-for first valid entry",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, 192.0.2.44, 10.0.0.1"},
			remoteAddr: "203.0.113.7:54321",
			expected:   "192.0.2.44",
		},
		{
			name:       "x-real-ip fallback",
			headers:    map[string]string{"X-Real-IP": "192.0.2.99"},
			remoteAddr: "203.0.113.7:54321",
			expected:   "192.0.2.99",
		},
		{
			name:       "invalid header values fall through to remote addr",
			headers:    map[string]string{"CF-Connecting-IP": "garbage", "X-Real-IP": ""},
			remoteAddr: "203.0.113.7:54321",
			expected:   "203.0.113.7",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "ipv6 normalization",
			headers:    map[string]string{"X-Real-IP": "2001:0db8:0000:0000:0000:0000:0000:0001"},
			remoteAddr: "203.0.113.7:54321",
			expected:   "2001:db8::1",
		},
		{
			name:       "unresolvable",
			remoteAddr: "garbage",
			expected:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, clientip.GetIP(r))
		})
	}
}
