package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRoom(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"7", "7", true},
		{"007", "7", true}, // ведущие нули схлопываются в каноническую форму
		{"0", "", false},
		{"-3", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := canonicalRoom(tc.in)
		assert.Equal(t, tc.ok, ok, "canonicalRoom(%q)", tc.in)
		assert.Equal(t, tc.want, got, "canonicalRoom(%q)", tc.in)
	}
}
