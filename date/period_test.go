package date

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "monthly", want: MonthlyPeriod()},
		{in: "Month", want: MonthlyPeriod()},
		{in: "weekly", want: WeeklyPeriod()},
		{in: "week", want: WeeklyPeriod()},
		{in: "360h", want: CustomPeriod(360 * time.Hour)},
		{in: "biweekly", wantErr: true},
		{in: "-24h", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParsePeriod(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePeriod(%q) want error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPeriodRoundTrip(t *testing.T) {
	for _, p := range []Period{MonthlyPeriod(), WeeklyPeriod(), CustomPeriod(72 * time.Hour)} {
		got, err := ParsePeriod(p.String())
		if err != nil {
			t.Fatalf("ParsePeriod(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("round trip %v -> %q -> %v", p, p.String(), got)
		}
	}
}
