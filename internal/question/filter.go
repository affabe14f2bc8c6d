package question

import (
	"net/url"
	"sort"
	"strings"

	"github.com/ledongthuc/goterators"
)

// AllValues disables the category and author predicates.
const AllValues = "all"

type Filter struct {
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
}

type Facets struct {
	Authors []string `json:"authors"`
	Tags    []string `json:"tags"`
}

func NewFilter() Filter {
	return Filter{Category: AllValues, Author: AllValues}
}

func (f Filter) Active() bool {
	return f.Text != "" || isSet(f.Category) || isSet(f.Author) || len(f.Tags) > 0
}

// ToggleTag selects tag when absent and deselects it when present.
func (f Filter) ToggleTag(tag string) Filter {
	next := goterators.Filter(f.Tags, func(t string) bool { return t != tag })
	if len(next) == len(f.Tags) {
		next = append(next, tag)
	}
	f.Tags = next
	return f
}

func (f Filter) Match(q Question) bool {
	if f.Text != "" && !strings.Contains(strings.ToLower(q.Statement), strings.ToLower(f.Text)) {
		return false
	}
	if isSet(f.Category) && q.Category != f.Category {
		return false
	}
	if isSet(f.Author) && q.AuthorName != f.Author {
		return false
	}
	for _, tag := range f.Tags {
		if !q.HasTag(tag) {
			return false
		}
	}
	return true
}

// Apply keeps the questions matching every active predicate, in input order.
func Apply(questions []Question, f Filter) []Question {
	out := goterators.Filter(questions, f.Match)
	if out == nil {
		return []Question{}
	}
	return out
}

func ComputeFacets(questions []Question) Facets {
	authors := make(map[string]struct{})
	tags := make(map[string]struct{})
	for _, q := range questions {
		authors[q.AuthorName] = struct{}{}
		for _, t := range q.Tags {
			tags[t] = struct{}{}
		}
	}
	return Facets{Authors: sortedKeys(authors), Tags: sortedKeys(tags)}
}

// ParseFilter reads text (or q), category, author and tags. Tags may repeat
// or be comma separated.
func ParseFilter(values url.Values) Filter {
	f := NewFilter()

	f.Text = values.Get("text")
	if f.Text == "" {
		f.Text = values.Get("q")
	}
	if c := values.Get("category"); c != "" {
		f.Category = c
	}
	if a := values.Get("author"); a != "" {
		f.Author = a
	}

	seen := make(map[string]struct{})
	for _, raw := range values["tags"] {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			f.Tags = append(f.Tags, tag)
		}
	}
	return f
}

func isSet(v string) bool {
	return v != "" && v != AllValues
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
