package gpstime

import (
	"testing"
	"time"
)

func TestCalendar(t *testing.T) {
	tests := []struct {
		name string
		week uint16
		itow uint32
		leap uint8
		want time.Time
	}{
		{
			name: "gps epoch",
			want: time.Date(1980, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "one week one hour",
			week: 1,
			itow: 3600 * 1000,
			want: time.Date(1980, 1, 13, 1, 0, 0, 0, time.UTC),
		},
		{
			name: "leap seconds applied",
			week: 2240,
			itow: 345600 * 1000, // midnight Thursday
			leap: 18,
			want: time.Date(2022, 12, 15, 0, 0, 0, 0, time.UTC).Add(-18 * time.Second),
		},
		{
			name: "sub-second itow",
			week: 1000,
			itow: 500,
			want: time.Date(1999, 3, 7, 0, 0, 0, 500e6, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calendar(tt.week, tt.itow, tt.leap)
			if !got.Equal(tt.want) {
				t.Errorf("Calendar() = %v, want %v", got, tt.want)
			}
		})
	}
}
