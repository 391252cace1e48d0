package fbitda

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0"},
		{"300", "$300"},
		{"999", "$999"},
		{"999.4", "$999"},
		{"1000", "$1K"},
		{"250000", "$250K"},
		{"1000000", "$1 million"},
		{"12345678", "$12 million"},
		{"1000000000", "$1.0B"},
		{"2500000000", "$2.5B"},
		{"3000000000", "$3.0B"},
		{"1234000000000", "$1234.0B"},
		{"999999", "$1000K"},
		{"1234567890", "$1.2B"},
		{"1e30", "$1000000000000000000000.0B"},
		{"-1e30", "-$1000000000000000000000000000000"},
		{"-300", "-$300"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := FormatAmount(decimal.RequireFromString(tt.amount)); got != tt.want {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{61, "00:01:01"},
		{3600, "01:00:00"},
		{86399, "23:59:59"},
		{99*3600 + 59*60 + 59, "99:59:59"},
		{100 * 3600, "100:00:00"},
		{-5, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestNewElapsedTime(t *testing.T) {
	for _, total := range []int64{0, 1, 59, 60, 3599, 3600, 3661, 360000} {
		e := NewElapsedTime(total)
		if got := e.Hours*3600 + e.Minutes*60 + e.Seconds; got != total || e.TotalSeconds != total {
			t.Errorf("NewElapsedTime(%d) = %+v, inconsistent breakdown", total, e)
		}
		if e.Minutes >= 60 || e.Seconds >= 60 {
			t.Errorf("NewElapsedTime(%d) = %+v, minutes and seconds must be below 60", total, e)
		}
	}
}
