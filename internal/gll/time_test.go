package gll

import "testing"

func TestFixClock(t *testing.T) {
	cases := []struct {
		field  string
		offset int
		want   string
	}{
		{"225444", 0, "22:54:44"},
		{"104820.22", 0, "10:48:20"},
		{"235959.00", 8, "07:59:59"}, // rollover wraps the hour
		{"013000", -2, "23:30:00"},
		{"", 0, NoFixTime},
		{"1234", 0, NoFixTime},
		{"12xx34", 0, NoFixTime},
	}
	for _, tc := range cases {
		if got := FixClock(tc.field, tc.offset); got != tc.want {
			t.Fatalf("FixClock(%q, %d)=%q want %q", tc.field, tc.offset, got, tc.want)
		}
	}
}
