package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		key    string
		want   string
	}{
		{name: "plain", domain: "https://cdn.example.com", key: "receipts/b-1.json", want: "https://cdn.example.com/receipts/b-1.json"},
		{name: "trailing slash", domain: "https://cdn.example.com/", key: "receipts/b-1.json", want: "https://cdn.example.com/receipts/b-1.json"},
		{name: "leading slash", domain: "https://cdn.example.com", key: "/receipts/b-1.json", want: "https://cdn.example.com/receipts/b-1.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &s3Impl{domain: tt.domain}

			assert.Equal(t, tt.want, svc.URL(tt.key))
		})
	}
}
