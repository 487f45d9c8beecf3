package scoring

import (
	"sort"

	"parade/repository"
	"parade/utils"
)

type Winner struct {
	EntryId          int
	OrganizationName string
	Position         *int
	Total            int
}

// Standing is one entry's row of the results table.
type Standing struct {
	EntryId          int
	EventId          int
	OrganizationName string
	Position         *int
	CategoryTotals   map[string]int
	Total            int
	JudgeCount       int
}

type Leaderboard struct {
	CategoryOrder []string
	Categories    map[string][]*Winner
	Overall       []*Winner
	OverallLabel  string
	Standings     []*Standing
}

type tally struct {
	total  int
	scored bool
}

// Aggregate reduces the stored scores of the given entries into per-category and
// overall winners.
//
// Categories are keyed by name so several events can be aggregated together. Null
// values are skipped. An entry is a winner candidate for a category once any judge gave
// it a value there. A category nobody gave a value has no winners. Overall, when no
// entry qualifies and the only entry in scope has a score, that entry wins with 0.
// Every entry sharing the maximum is returned.
func Aggregate(categories []*repository.Category, entries []*repository.Entry, scores []*repository.Score, overallLabel string) *Leaderboard {
	board := &Leaderboard{
		CategoryOrder: make([]string, 0),
		Categories:    make(map[string][]*Winner),
		Overall:       make([]*Winner, 0),
		OverallLabel:  overallLabel,
		Standings:     make([]*Standing, 0),
	}
	if board.OverallLabel == "" {
		board.OverallLabel = repository.DefaultOverallLabel
	}

	sorted := make([]*repository.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DisplayOrder != sorted[j].DisplayOrder {
			return sorted[i].DisplayOrder < sorted[j].DisplayOrder
		}
		return sorted[i].Id < sorted[j].Id
	})
	categoryNames := make(map[int]string, len(sorted))
	for _, category := range sorted {
		categoryNames[category.Id] = category.Name
		if _, ok := board.Categories[category.Name]; !ok {
			board.CategoryOrder = append(board.CategoryOrder, category.Name)
			board.Categories[category.Name] = make([]*Winner, 0)
		}
	}

	entryById := make(map[int]*repository.Entry, len(entries))
	for _, entry := range entries {
		entryById[entry.Id] = entry
	}

	byCategory := make(map[string]map[int]*tally)
	for _, name := range board.CategoryOrder {
		byCategory[name] = make(map[int]*tally)
	}
	overall := make(map[int]*tally)
	judges := make(map[int]int)

	for _, score := range scores {
		if _, ok := entryById[score.EntryId]; !ok {
			continue
		}
		judges[score.EntryId]++
		if overall[score.EntryId] == nil {
			overall[score.EntryId] = &tally{}
		}
		for _, item := range score.Items {
			name, ok := categoryNames[item.CategoryId]
			if !ok {
				continue
			}
			t := byCategory[name][score.EntryId]
			if t == nil {
				t = &tally{}
				byCategory[name][score.EntryId] = t
			}
			if item.Value == nil {
				continue
			}
			t.total += *item.Value
			t.scored = true
			overall[score.EntryId].total += *item.Value
			overall[score.EntryId].scored = true
		}
	}

	for _, name := range board.CategoryOrder {
		board.Categories[name] = winners(entries, byCategory[name], judges, false)
	}
	board.Overall = winners(entries, overall, judges, true)

	for _, entry := range entries {
		standing := &Standing{
			EntryId:          entry.Id,
			EventId:          entry.EventId,
			OrganizationName: entry.OrganizationName,
			Position:         entry.Position,
			CategoryTotals:   make(map[string]int, len(board.CategoryOrder)),
			JudgeCount:       judges[entry.Id],
		}
		for _, name := range board.CategoryOrder {
			if t := byCategory[name][entry.Id]; t != nil {
				standing.CategoryTotals[name] = t.total
			} else {
				standing.CategoryTotals[name] = 0
			}
		}
		if t := overall[entry.Id]; t != nil {
			standing.Total = t.total
		}
		board.Standings = append(board.Standings, standing)
	}
	sort.SliceStable(board.Standings, func(i, j int) bool {
		a, b := board.Standings[i], board.Standings[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return positionLess(a.Position, a.EntryId, b.Position, b.EntryId)
	})
	return board
}

func winners(entries []*repository.Entry, tallies map[int]*tally, judges map[int]int, soleEntry bool) []*Winner {
	candidates := utils.Filter(entries, func(entry *repository.Entry) bool {
		t := tallies[entry.Id]
		return t != nil && t.scored
	})
	if soleEntry && len(candidates) == 0 && len(entries) == 1 && judges[entries[0].Id] > 0 {
		candidates = append(candidates, entries[0])
	}
	result := make([]*Winner, 0)
	if len(candidates) == 0 {
		return result
	}

	totalOf := func(entryId int) int {
		if t := tallies[entryId]; t != nil {
			return t.total
		}
		return 0
	}
	best := totalOf(candidates[0].Id)
	for _, entry := range candidates[1:] {
		if total := totalOf(entry.Id); total > best {
			best = total
		}
	}
	for _, entry := range candidates {
		if totalOf(entry.Id) == best {
			result = append(result, &Winner{
				EntryId:          entry.Id,
				OrganizationName: entry.OrganizationName,
				Position:         entry.Position,
				Total:            best,
			})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return positionLess(result[i].Position, result[i].EntryId, result[j].Position, result[j].EntryId)
	})
	return result
}

// positionLess orders by position with unassigned entries last, then by id.
func positionLess(a *int, aId int, b *int, bId int) bool {
	switch {
	case a != nil && b != nil && *a != *b:
		return *a < *b
	case a != nil && b == nil:
		return true
	case a == nil && b != nil:
		return false
	}
	return aId < bId
}
