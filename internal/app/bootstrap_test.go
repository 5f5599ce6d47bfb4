package app

import "testing"

func TestListenAddr(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"4000", ":4000", false},
		{":4000", ":4000", false},
		{" 8080 ", ":8080", false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tc := range cases {
		got, err := ListenAddr(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ListenAddr(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ListenAddr(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ListenAddr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
