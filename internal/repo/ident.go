package repo

import (
	"path/filepath"
	"strings"
)

// Separator joins package segments in a test identifier.
const Separator = "."

// IdentifierFromPath derives a package-qualified test identifier from a
// path relative to the source root: ancestor directory names and the base
// file name (with ext stripped) joined by the separator.
//
//	size/classes/OneClass.java -> size.classes.OneClass
func IdentifierFromPath(rel, ext string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, ext)
	return strings.ReplaceAll(rel, "/", Separator)
}

// CaseName derives the reporting name for a test identifier: lowercased,
// with separators and spaces replaced by underscores. Injective as long as
// the identifiers themselves are unique.
//
//	size.classes.OneClass -> test_size_classes_oneclass
func CaseName(identifier string) string {
	name := strings.ToLower(identifier)
	name = strings.ReplaceAll(name, Separator, "_")
	name = strings.ReplaceAll(name, " ", "_")
	return "test_" + name
}
