// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagerange parses textual page-range expressions into ordered
// groups of 1-based page indices.
//
// An expression like "1-3,5;7-end" contains semicolon-delimited segments,
// each of which becomes one output group. Within a segment, commas separate
// sub-ranges: either a single page number or an inclusive "start-end" range.
// The literal "end" resolves to the document's last page. Malformed or
// out-of-bounds tokens are skipped, never fatal: a wholly invalid expression
// parses to zero groups and it is the caller's job to treat that as an
// operation-level failure.
package pagerange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Group is one deduplicated, ascending list of 1-based page indices destined
// for one output artifact.
type Group []int

// First returns the lowest page in the group.
func (g Group) First() int {
	return g[0]
}

// Last returns the highest page in the group.
func (g Group) Last() int {
	return g[len(g)-1]
}

// Parse resolves spec against totalPages and returns one Group per
// non-empty semicolon-delimited segment, in segment order. The second return
// value lists human-readable notes for every token that was skipped.
//
// Parse never fails: a blank spec or a spec with no usable tokens returns a
// nil group slice.
func Parse(spec string, totalPages int) (groups []Group, skipped []string) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	for _, segment := range strings.Split(spec, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		pages := make(map[int]bool)
		for _, token := range strings.Split(segment, ",") {
			token = strings.ToLower(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			// "end" stands for the last page of the document.
			token = strings.ReplaceAll(token, "end", strconv.Itoa(totalPages))

			accepted, note := parseToken(token, totalPages)
			if note != "" {
				skipped = append(skipped, note)
				continue
			}
			for _, p := range accepted {
				pages[p] = true
			}
		}

		if len(pages) == 0 {
			continue
		}
		group := make(Group, 0, len(pages))
		for p := range pages {
			group = append(group, p)
		}
		sort.Ints(group)
		groups = append(groups, group)
	}
	return groups, skipped
}

// parseToken interprets one comma-delimited token. It returns either the
// accepted pages or a non-empty skip note.
func parseToken(token string, totalPages int) (pages []int, note string) {
	if before, after, isRange := strings.Cut(token, "-"); isRange {
		start, err1 := strconv.Atoi(strings.TrimSpace(before))
		end, err2 := strconv.Atoi(strings.TrimSpace(after))
		if err1 != nil || err2 != nil {
			return nil, fmt.Sprintf("skipping unparseable range %q", token)
		}
		if start <= 0 || end < start || end > totalPages {
			return nil, fmt.Sprintf("skipping out-of-bounds range %q (document has %d pages)", token, totalPages)
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
		return pages, ""
	}

	page, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Sprintf("skipping unparseable page %q", token)
	}
	if page <= 0 || page > totalPages {
		return nil, fmt.Sprintf("skipping out-of-bounds page %d (document has %d pages)", page, totalPages)
	}
	return []int{page}, ""
}

// Union flattens groups into one deduplicated ascending page list. Rasterize
// uses it: ranges select pages, they do not partition output.
func Union(groups []Group) []int {
	seen := make(map[int]bool)
	for _, g := range groups {
		for _, p := range g {
			seen[p] = true
		}
	}
	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}
