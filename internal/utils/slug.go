package utils

import (
	"path"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
var multiDash = regexp.MustCompile(`-+`)

func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "/", " ")
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// SafeFileName slugs the base name of an uploaded file and keeps a short extension,
// so "../Contract Notes.PDF" becomes "contract-notes.pdf".
func SafeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	ext := strings.ToLower(path.Ext(base))
	stem := Slugify(strings.TrimSuffix(base, path.Ext(base)))
	if stem == "" {
		stem = "file"
	}
	ext = "." + nonSlugChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	if ext == "." || len(ext) > 10 {
		return stem
	}
	return stem + ext
}
