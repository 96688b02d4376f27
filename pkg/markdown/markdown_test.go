package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSafeHTML(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		contains []string
		excludes []string
	}{
		{"empty", "", nil, nil},
		{"emphasis", "**bold** and _it_", []string{"<strong>bold</strong>", "<em>it</em>"}, nil},
		{"script dropped", "hi <script>alert(1)</script>", []string{"hi"}, []string{"<script", "alert(1)</script>"}},
		{"js link dropped", "[x](javascript:alert(1))", nil, []string{"javascript:"}},
		{"event handler dropped", `<img src="a.png" onerror="alert(1)">`, nil, []string{"onerror"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := ToSafeHTML(tc.in)
			if tc.in == "" {
				assert.Empty(t, out)
			}
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
