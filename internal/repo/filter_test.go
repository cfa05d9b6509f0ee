package repo

import (
	"testing"

	"nat/internal/domain"
)

func TestFilterByName(t *testing.T) {
	tests := []domain.Test{
		{Identifier: "size.classes.OneClass"},
		{Identifier: "size.arrays.IntArray"},
		{Identifier: "pkg.Foo"},
	}

	cases := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern keeps everything",
			pattern:  "",
			expected: []string{"size.classes.OneClass", "size.arrays.IntArray", "pkg.Foo"},
		},
		{
			name:     "prefix wildcard",
			pattern:  "size.*",
			expected: []string{"size.classes.OneClass", "size.arrays.IntArray"},
		},
		{
			name:     "surrounding wildcards",
			pattern:  "*Array*",
			expected: []string{"size.arrays.IntArray"},
		},
		{
			name:     "substring without wildcards",
			pattern:  "Foo",
			expected: []string{"pkg.Foo"},
		},
		{
			name:     "no match",
			pattern:  "*Nope*",
			expected: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterByName(tests, tc.pattern)
			if len(filtered) != len(tc.expected) {
				t.Fatalf("expected %d tests, got %d", len(tc.expected), len(filtered))
			}
			for i, test := range filtered {
				if test.Identifier != tc.expected[i] {
					t.Errorf("expected %s at %d, got %s", tc.expected[i], i, test.Identifier)
				}
			}
		})
	}
}
