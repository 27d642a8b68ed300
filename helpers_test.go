package landing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://fashflow.app", nil, "https://fashflow.app/"},
		{"https://fashflow.app/", nil, "https://fashflow.app/"},
		{"https://example.com/base", []string{"a", "b"}, "https://example.com/base/a/b/"},
		{"https://example.com", []string{"/nested/", "page"}, "https://example.com/nested/page/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segs...), "BuildURL(%q, %v)", tt.base, tt.segs)
	}
}
