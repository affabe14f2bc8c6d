package editor

import "strings"

// AddTag appends the trimmed input unless it is empty or already present.
func AddTag(tags []string, input string) []string {
	tag := strings.TrimSpace(input)
	if tag == "" {
		return tags
	}
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

func RemoveTag(tags []string, tag string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
