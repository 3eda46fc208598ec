// Copyright 2026 Michael Grady.

package comb

import "testing"

func TestFoldl(t *testing.T) {
	sub := Foldl(func(a, e int) int { return a - e })
	// Left-associative: ((10-1)-2)-3.
	if got := sub(10, []int{1, 2, 3}); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	if got := sub(10, nil); got != 10 {
		t.Errorf("got %d, want 10", got)
	}

	join := Foldl(func(a string, e rune) string { return a + string(e) })
	if got := join("x", []rune("abc")); got != "xabc" {
		t.Errorf("got %q, want %q", got, "xabc")
	}
}

func TestFoldr(t *testing.T) {
	sub := Foldr(func(e, a int) int { return e - a })
	// Right-associative: 1-(2-(3-0)).
	if got := sub([]int{1, 2, 3}, 0); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := sub(nil, 7); got != 7 {
		t.Errorf("got %d, want 7", got)
	}

	cons := Foldr(func(e rune, a string) string { return string(e) + a })
	if got := cons([]rune("abc"), "x"); got != "abcx" {
		t.Errorf("got %q, want %q", got, "abcx")
	}
}
