// Package tags handles Google Reader tag strings as used by the feed backend.
//
// Three namespaces matter: state tags (starred, read), user labels
// (user/<owner>/label/<name>) and everything else, which is passed through.
// Label tags may carry a numeric owner id or the "-" wildcard depending on the
// endpoint that produced them, so every comparison goes through
// NormalizeLabelTag first.
package tags

import (
	"strings"
)

const (
	Starred = "user/-/state/com.google/starred"
	Read    = "user/-/state/com.google/read"
)

const (
	googleStatePrefix   = "state/com.google/"
	freshRSSStatePrefix = "state/org.freshrss/"
	labelSegment        = "label/"
)

// NormalizeLabelTag rewrites the owner segment of a user tag to "-".
// Tags outside the user/ namespace are returned unchanged.
func NormalizeLabelTag(tag string) string {
	rest, ok := strings.CutPrefix(tag, "user/")
	if !ok {
		return tag
	}
	owner, path, ok := strings.Cut(rest, "/")
	if !ok || owner == "-" || !isNumeric(owner) {
		return tag
	}
	return "user/-/" + path
}

// Label returns the canonical label tag for a label name.
func Label(name string) string {
	return "user/-/label/" + name
}

// LabelName extracts the name of a label tag; ok is false for other tags.
func LabelName(tag string) (string, bool) {
	rest, ok := strings.CutPrefix(NormalizeLabelTag(tag), "user/-/"+labelSegment)
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

func IsLabel(tag string) bool {
	_, ok := LabelName(tag)
	return ok
}

// IsState reports whether the tag lives in one of the state namespaces.
func IsState(tag string) bool {
	rest, ok := strings.CutPrefix(NormalizeLabelTag(tag), "user/-/")
	if !ok {
		return false
	}
	return strings.HasPrefix(rest, googleStatePrefix) || strings.HasPrefix(rest, freshRSSStatePrefix)
}

// Normalize normalizes and de-duplicates a tag list, keeping first-seen order.
// The result is never nil.
func Normalize(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, t := range list {
		n := NormalizeLabelTag(t)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Contains reports whether list holds tag once both are normalized.
func Contains(list []string, tag string) bool {
	want := NormalizeLabelTag(tag)
	for _, t := range list {
		if NormalizeLabelTag(t) == want {
			return true
		}
	}
	return false
}

// Labels keeps only the user-label tags of list, normalized.
func Labels(list []string) []string {
	out := make([]string, 0, len(list))
	for _, t := range Normalize(list) {
		if IsLabel(t) {
			out = append(out, t)
		}
	}
	return out
}

// Diff returns the tags of desired missing from current and the tags of
// current missing from desired. Both inputs are normalized before comparison.
func Diff(current, desired []string) (toAdd, toRemove []string) {
	cur := Normalize(current)
	want := Normalize(desired)

	for _, t := range want {
		if !Contains(cur, t) {
			toAdd = append(toAdd, t)
		}
	}
	for _, t := range cur {
		if !Contains(want, t) {
			toRemove = append(toRemove, t)
		}
	}
	return toAdd, toRemove
}

// With returns list plus tag, unless already present.
func With(list []string, tag string) []string {
	out := Normalize(list)
	if Contains(out, tag) {
		return out
	}
	return append(out, NormalizeLabelTag(tag))
}

// Without returns list minus every occurrence of tag.
func Without(list []string, tag string) []string {
	want := NormalizeLabelTag(tag)
	out := make([]string, 0, len(list))
	for _, t := range Normalize(list) {
		if t != want {
			out = append(out, t)
		}
	}
	return out
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
