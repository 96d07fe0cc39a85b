// Package extract locates lottery draw data inside a rendered document whose
// structure is unknown and unstable.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"lotto-stats/internal/constants"
)

// Document is the inspection surface a rendered page exposes.
type Document interface {
	// Select returns all elements matching the CSS selector.
	Select(selector string) []Element
}

// Element is a single node within a Document.
type Element interface {
	// Text returns the combined text of the element and its descendants.
	Text() string
	// Find returns descendant elements matching the CSS selector.
	Find(selector string) []Element
}

// Pool describes the number pool being extracted: how many numbers one draw
// holds and the largest number in the domain.
type Pool struct {
	Size int
	Max  int
}

// containerSelectors is the cascade of candidate result containers, most
// specific first. The first selector that matches anything wins; the generic
// tail entries exist only as a last resort since they match broadly.
var containerSelectors = []string{
	".lottery-results .draw-result",
	".results-table tbody tr",
	".draw-history .draw",
	".result-row",
	"[data-draw]",
	"table tr",
	"ul li",
}

// numberSelectors cascades from number-specific markup down to generic text
// nodes within a matched container.
var numberSelectors = []string{
	".ball",
	".number",
	".num",
	"[data-number]",
	"span",
	"td",
}

var tokenPattern = regexp.MustCompile(`\b\d{1,2}\b`)

// Engine implements the two-phase extraction: a selector cascade over
// structured markup, then whole-document numeric mining as a fallback.
type Engine struct {
	logger zerolog.Logger
}

func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Extract returns raw candidate number groups for one pool. Groups are
// deduplicated, exactly pool.Size long and sorted ascending. An empty result
// is a valid outcome, not an error; the engine never fabricates data.
func (e *Engine) Extract(doc Document, pool Pool) [][]int {
	containers := e.findContainers(doc)
	if len(containers) > 0 {
		if groups := e.fromContainers(containers, pool); len(groups) > 0 {
			e.logger.Debug().Int("groups", len(groups)).Int("containers", len(containers)).Msg("extracted structured draw data")
			return groups
		}
	}

	groups := e.mine(doc, pool)
	if len(groups) > 0 {
		e.logger.Debug().Int("groups", len(groups)).Msg("extracted draw data by numeric mining")
	} else {
		e.logger.Debug().Msg("no draw data found in document")
	}
	return groups
}

func (e *Engine) findContainers(doc Document) []Element {
	for _, sel := range containerSelectors {
		if els := doc.Select(sel); len(els) > 0 {
			e.logger.Debug().Str("selector", sel).Int("matches", len(els)).Msg("container selector matched")
			return els
		}
	}
	return nil
}

func (e *Engine) fromContainers(containers []Element, pool Pool) [][]int {
	if len(containers) > constants.MaxResultContainers {
		containers = containers[:constants.MaxResultContainers]
	}

	var groups [][]int
	for _, container := range containers {
		numbers := containerNumbers(container, pool)
		// Containers without an exact-cardinality group are dropped
		// silently; partial draws are worse than no draws.
		if len(numbers) != pool.Size {
			continue
		}
		sort.Ints(numbers)
		groups = append(groups, numbers)
	}
	return groups
}

// containerNumbers collects distinct in-range numbers from the first nested
// selector that yields any parsable tokens.
func containerNumbers(container Element, pool Pool) []int {
	for _, sel := range numberSelectors {
		els := container.Find(sel)
		if len(els) == 0 {
			continue
		}
		var numbers []int
		seen := make(map[int]bool)
		for _, el := range els {
			for _, n := range parseTokens(el.Text(), pool.Max) {
				if !seen[n] {
					seen[n] = true
					numbers = append(numbers, n)
				}
			}
		}
		if len(numbers) > 0 {
			return numbers
		}
	}

	// No nested markup carried numbers; fall back to the container's own text.
	var numbers []int
	seen := make(map[int]bool)
	for _, n := range parseTokens(container.Text(), pool.Max) {
		if !seen[n] {
			seen[n] = true
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// mine scans the whole document text for 1-2 digit tokens, filters them to
// the pool's domain and partitions the sequence into fixed-size chunks. A
// chunk only counts as a draw when its values are all distinct, which guards
// against coincidental repeats in free text.
func (e *Engine) mine(doc Document, pool Pool) [][]int {
	var sb strings.Builder
	roots := doc.Select("body")
	if len(roots) == 0 {
		roots = doc.Select("*")
	}
	for _, el := range roots {
		sb.WriteString(el.Text())
		sb.WriteByte('\n')
	}

	numbers := parseTokens(sb.String(), pool.Max)

	var groups [][]int
	for i := 0; i+pool.Size <= len(numbers); i += pool.Size {
		chunk := numbers[i : i+pool.Size]
		if !distinct(chunk) {
			continue
		}
		group := make([]int, pool.Size)
		copy(group, chunk)
		sort.Ints(group)
		groups = append(groups, group)
	}
	return groups
}

// parseTokens extracts integers in (0, MaxTokenValue] from text, keeping only
// values within [1, max].
func parseTokens(text string, max int) []int {
	var out []int
	for _, tok := range tokenPattern.FindAllString(text, -1) {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if n <= 0 || n > constants.MaxTokenValue {
			continue
		}
		if n > max {
			continue
		}
		out = append(out, n)
	}
	return out
}

func distinct(chunk []int) bool {
	seen := make(map[int]bool, len(chunk))
	for _, n := range chunk {
		if seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}
