package repo

import (
	"testing"
)

func TestIdentifierFromPath(t *testing.T) {
	tests := []struct {
		name     string
		rel      string
		expected string
	}{
		{
			name:     "top-level file",
			rel:      "Simple.java",
			expected: "Simple",
		},
		{
			name:     "nested package",
			rel:      "size/classes/OneClass.java",
			expected: "size.classes.OneClass",
		},
		{
			name:     "single package level",
			rel:      "pkg/Foo.java",
			expected: "pkg.Foo",
		},
		{
			name:     "extension only stripped at the end",
			rel:      "pkg/java/Test.java",
			expected: "pkg.java.Test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IdentifierFromPath(tt.rel, ".java")
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestCaseName(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   string
	}{
		{
			name:       "dotted identifier",
			identifier: "size.classes.OneClass",
			expected:   "test_size_classes_oneclass",
		},
		{
			name:       "plain identifier",
			identifier: "Simple",
			expected:   "test_simple",
		},
		{
			name:       "identifier with spaces",
			identifier: "pkg.Some Test",
			expected:   "test_pkg_some_test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CaseName(tt.identifier)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestCaseName_Injective(t *testing.T) {
	identifiers := []string{
		"pkg.Foo",
		"pkg.Bar",
		"size.classes.OneClass",
		"size.arrays.OneClass",
		"Simple",
	}

	seen := make(map[string]string)
	for _, identifier := range identifiers {
		name := CaseName(identifier)
		if prev, ok := seen[name]; ok {
			t.Errorf("case name %s derived from both %s and %s", name, prev, identifier)
		}
		seen[name] = identifier
	}
}
