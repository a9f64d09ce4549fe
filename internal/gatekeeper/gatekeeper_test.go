package gatekeeper

import (
	"errors"
	"testing"
)

// TestAuthorize はAuthorize関数を検証する。
func TestAuthorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		provided   string
		configured string
		want       bool
	}{
		{name: "完全一致", provided: "S1", configured: "S1", want: true},
		{name: "値が異なる", provided: "S2", configured: "S1", want: false},
		{name: "大文字小文字が異なる", provided: "s1", configured: "S1", want: false},
		{name: "前後の空白は正規化しない", provided: " S1", configured: "S1", want: false},
		{name: "前方一致は不一致", provided: "S", configured: "S1", want: false},
		{name: "空文字列", provided: "", configured: "S1", want: false},
		{name: "マルチバイト文字の一致", provided: "鍵", configured: "鍵", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Authorize(tt.provided, tt.configured); got != tt.want {
				t.Errorf("Authorize(%q, %q) = %v, want %v", tt.provided, tt.configured, got, tt.want)
			}
		})
	}
}

// TestCheck はCheck関数を検証する。
func TestCheck(t *testing.T) {
	t.Parallel()

	if err := Check("S1", "S1"); err != nil {
		t.Errorf("一致時にエラーが返った: %v", err)
	}
	if err := Check("bad", "S1"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}
