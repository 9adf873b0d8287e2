package domain

import (
	"sort"
	"strings"
)

// Match scores for launcher queries. Exact beats prefix beats substring;
// substring matches earn a small bonus the closer they sit to the start.
const (
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 80.0
	ScoreSubstringMatch = 60.0
	ScorePositionBonus  = 10.0
	ScoreWordsMatch     = 40.0
)

// LauncherMatch is a bookmark candidate for a launcher query, with the
// category it was found in.
type LauncherMatch struct {
	Category string   `json:"category"`
	Bookmark Bookmark `json:"bookmark"`
	Score    float64  `json:"score"`
}

// ScoreLauncherQuery calculates the match score of a bookmark against a
// free-text launcher query. Zero means no match.
func ScoreLauncherQuery(query string, b Bookmark) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0.0
	}

	title := strings.ToLower(b.Title)

	if query == title {
		return ScoreExactMatch
	}

	if strings.HasPrefix(title, query) {
		return ScorePrefixMatch
	}

	if idx := strings.Index(title, query); idx >= 0 {
		bonus := ScorePositionBonus * (1.0 - float64(idx)/float64(len(title)))
		return ScoreSubstringMatch + bonus
	}

	// Multi-word query: all words must appear somewhere in the title.
	words := strings.Fields(query)
	if len(words) > 1 {
		for _, word := range words {
			if !strings.Contains(title, word) {
				return 0.0
			}
		}
		return ScoreWordsMatch
	}

	return 0.0
}

// RankLauncherMatches scores every bookmark in every category and returns
// the matches ordered by descending score, ties broken by title then
// category for stable output.
func RankLauncherMatches(query string, byCategory map[string][]Bookmark) []LauncherMatch {
	matches := make([]LauncherMatch, 0)

	for category, list := range byCategory {
		for _, b := range list {
			score := ScoreLauncherQuery(query, b)
			if score == 0.0 {
				continue
			}
			matches = append(matches, LauncherMatch{
				Category: category,
				Bookmark: b,
				Score:    score,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Bookmark.Title != matches[j].Bookmark.Title {
			return matches[i].Bookmark.Title < matches[j].Bookmark.Title
		}
		return matches[i].Category < matches[j].Category
	})

	return matches
}
