package otel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

type tier string

func (t tier) String() string { return "tier:" + string(t) }

func TestKeyValue(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "DAC", want: attribute.StringValue("DAC")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "int64", value: int64(12000), want: attribute.Int64Value(12000)},
		{name: "float", value: 4.5, want: attribute.Float64Value(4.5)},
		{name: "strings", value: []string{"BG", "VQ"}, want: attribute.StringSliceValue([]string{"BG", "VQ"})},
		{name: "time", value: at, want: attribute.StringValue("2026-03-01T09:30:00Z")},
		{name: "duration", value: 1500 * time.Millisecond, want: attribute.Int64Value(1500)},
		{name: "stringer", value: tier("business"), want: attribute.StringValue("tier:business")},
		{name: "fallback", value: struct{ N int }{N: 2}, want: attribute.StringValue("{2}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := keyValue("k", tt.value)

			assert.Equal(t, attribute.Key("k"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}

func TestKeyValuesNil(t *testing.T) {
	assert.Empty(t, keyValues(nil))
}
