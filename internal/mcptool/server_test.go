package mcptool

import "testing"

func TestPositiveInt(t *testing.T) {
	cases := []struct {
		in         int
		defaultVal int
		want       int
	}{
		{10, 50, 10},
		{1, 50, 1},
		{0, 50, 50},
		{-1, 50, 50},
		{-100, 25, 25},
	}
	for _, tc := range cases {
		if got := positiveInt(tc.in, tc.defaultVal); got != tc.want {
			t.Errorf("positiveInt(%d, %d) = %d, want %d", tc.in, tc.defaultVal, got, tc.want)
		}
	}
}
