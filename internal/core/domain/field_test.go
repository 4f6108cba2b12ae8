package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

func TestFieldValue_Compare(t *testing.T) {
	tests := []struct {
		name string
		a    domain.FieldValue
		b    domain.FieldValue
		want int
	}{
		{
			name: "strings_compare_case_insensitively",
			a:    domain.StringValue("Apple"),
			b:    domain.StringValue("apple"),
			want: 0,
		},
		{
			name: "strings_order_lexically",
			a:    domain.StringValue("Bolt"),
			b:    domain.StringValue("anchor"),
			want: 1,
		},
		{
			name: "numbers_order_by_value",
			a:    domain.NumberValue(decimal.NewFromFloat(2.5)),
			b:    domain.NumberValue(decimal.NewFromInt(10)),
			want: -1,
		},
		{
			name: "equal_numbers_with_different_scale",
			a:    domain.NumberValue(decimal.RequireFromString("10.00")),
			b:    domain.IntValue(10),
			want: 0,
		},
		{
			name: "timestamps_order_chronologically",
			a:    domain.TimestampValue("2025-01-10T09:30:00+0100"),
			b:    domain.TimestampValue("2025-01-10"),
			want: 1,
		},
		{
			name: "unparsable_timestamp_is_epoch_zero",
			a:    domain.TimestampValue("not a date"),
			b:    domain.TimeValue(time.Unix(0, 0)),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw    string
		wantOK bool
		want   time.Time
	}{
		{raw: "2025-01-10", wantOK: true, want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{raw: "2025-01-10T09:30:00Z", wantOK: true, want: time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)},
		{raw: "2025-01-10T10:30:00+0100", wantOK: true, want: time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)},
		{raw: "  2025-01-10 09:30:00 ", wantOK: true, want: time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)},
		{raw: "", wantOK: false},
		{raw: "12th January 2026", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := domain.ParseTimestamp(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	assert.Equal(t, "", domain.ZeroValue(domain.KindString).Text)
	assert.True(t, domain.ZeroValue(domain.KindNumber).Number.IsZero())
	assert.Equal(t, int64(0), domain.ZeroValue(domain.KindTime).Millis)
	assert.Equal(t, 0, domain.ZeroValue(domain.KindTime).Compare(domain.TimeValue(time.Time{})))
}
