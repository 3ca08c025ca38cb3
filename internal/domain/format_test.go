package domain

import (
	"testing"
	"time"
)

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{3661 * time.Second, "01:01:01"},
		{-time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatHMS(tt.d); got != tt.want {
				t.Errorf("FormatHMS(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatHMSCentis(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00.00"},
		{12340 * time.Millisecond, "00:00:12.34"},
		{999 * time.Millisecond, "00:00:00.99"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatHMSCentis(tt.d); got != tt.want {
				t.Errorf("FormatHMSCentis(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatMS(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{25 * time.Minute, "25:00"},
		{5 * time.Minute, "05:00"},
		{90 * time.Minute, "90:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatMS(tt.d); got != tt.want {
				t.Errorf("FormatMS(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestParseMMSS(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"05:00", 5 * time.Minute},
		{"0:30", 30 * time.Second},
		{"90", 90 * time.Second},
		{" 2 : 15 ", 2*time.Minute + 15*time.Second},
		{"", 0},
		{"abc", 0},
		{"1:2:3", 0},
		{"-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseMMSS(tt.in); got != tt.want {
				t.Errorf("ParseMMSS(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tea", "tea"},
		{"aaaaaaaaaaaaaaaaaaaaaa", "aaaaaaaaaaaaaaaaaaaa"},
		{"绿茶绿茶绿茶绿茶绿茶绿茶绿茶绿茶绿茶绿茶绿", "绿茶绿茶绿茶绿茶绿茶绿茶绿茶绿茶绿茶绿茶"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := TruncateName(tt.in); got != tt.want {
				t.Errorf("TruncateName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
