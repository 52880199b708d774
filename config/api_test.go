package config

import "testing"

func TestClampPage(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{42, 42},
		{MaxPage, MaxPage},
		{MaxPage + 1, MaxPage},
	}
	for _, c := range cases {
		if got := ClampPage(c.in); got != c.want {
			t.Errorf("ClampPage(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClampPageSize(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, MinPageSize},
		{12, 12},
		{100, 100},
		{101, MaxPageSize},
	}
	for _, c := range cases {
		if got := clampPageSize(c.in); got != c.want {
			t.Errorf("clampPageSize(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
