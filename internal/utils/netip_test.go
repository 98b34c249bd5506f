package utils

import (
	"net/http/httptest"
	"testing"
)

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.10 ", "::1", "garbage", ""})

	if m.IsEmpty() {
		t.Fatal("IsEmpty() = true, want false")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	if inv := m.Invalid(); len(inv) != 1 || inv[0] != "garbage" {
		t.Errorf("Invalid() = %v, want [garbage]", inv)
	}

	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"192.168.1.10", true},
		{"192.168.1.11", false},
		{"::1", true},
		{"::ffff:10.0.0.1", true},
		{"not-an-ip", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", remoteAddr: "1.2.3.4:5678", want: "1.2.3.4"},
		{
			name:       "proxy headers ignored when untrusted",
			remoteAddr: "1.2.3.4:5678",
			headers:    map[string]string{"X-Forwarded-For": "9.9.9.9"},
			want:       "1.2.3.4",
		},
		{
			name:       "cloudflare first",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"CF-Connecting-IP": "5.5.5.5", "X-Forwarded-For": "9.9.9.9"},
			trustProxy: true,
			want:       "5.5.5.5",
		},
		{
			name:       "left-most forwarded",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": " 9.9.9.9 , 8.8.8.8"},
			trustProxy: true,
			want:       "9.9.9.9",
		},
		{
			name:       "real ip last",
			remoteAddr: "127.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "7.7.7.7"},
			trustProxy: true,
			want:       "7.7.7.7",
		},
		{name: "ipv6 remote", remoteAddr: "[::1]:8080", want: "::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
