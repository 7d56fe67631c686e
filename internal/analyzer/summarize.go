package analyzer

import (
	"sort"

	"github.com/carthworks/cleartext/internal/model"
	"github.com/carthworks/cleartext/internal/scanner"
)

// Summarize builds the frequency table for text: one entry per distinct
// hidden code point, sorted by count descending with ties broken by
// ascending code point value. The sum of all counts equals the total
// occurrence count reported by the scanner.
func Summarize(text string) []model.FrequencyEntry {
	return SummarizeOccurrences(scanner.Scan(text))
}

// SummarizeOccurrences aggregates an existing scan result into the
// frequency table. Splitting this out lets callers that already hold the
// occurrence list avoid a second pass over the text.
func SummarizeOccurrences(occs []model.PositionedOccurrence) []model.FrequencyEntry {
	if len(occs) == 0 {
		return nil
	}

	counts := make(map[rune]*model.FrequencyEntry, len(occs))
	for _, occ := range occs {
		if entry, ok := counts[occ.CodePoint]; ok {
			entry.Count++
			continue
		}
		counts[occ.CodePoint] = &model.FrequencyEntry{
			CodePoint: occ.CodePoint,
			Name:      occ.Name,
			Category:  occ.Category,
			Count:     1,
		}
	}

	entries := make([]model.FrequencyEntry, 0, len(counts))
	for _, entry := range counts {
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].CodePoint < entries[j].CodePoint
	})

	return entries
}
