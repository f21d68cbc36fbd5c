// Package recommend ranks books and circles for a user, preferring an
// external recommender and falling back to a local heuristic scorer.
package recommend

import (
	"sort"
	"strings"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

const (
	// DefaultBookTopK is the default number of book recommendations.
	DefaultBookTopK = 8
	// DefaultCircleTopK is the default number of circle recommendations.
	DefaultCircleTopK = 6
)

type scored struct {
	id    string
	score float64
}

func topIDs(candidates []scored, topK int) []string {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if topK < len(candidates) {
		candidates = candidates[:topK]
	}
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	return ids
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func matchesAny(value string, needles []string) bool {
	value = strings.ToLower(value)
	for _, n := range needles {
		if n != "" && strings.Contains(value, n) {
			return true
		}
	}
	return false
}

// ScoreBooks ranks candidate books against the user's preferences and returns
// the top-K book IDs. Books owned by the user are excluded. Genre and author
// preference matches dominate; rating, review count, and availability break
// ties. Equal scores keep the input order.
func ScoreBooks(user *entity.User, books []*entity.Book, topK int) []string {
	if topK <= 0 {
		topK = DefaultBookTopK
	}

	prefGenres := lowerAll(user.Preferences.Genres)
	prefAuthors := lowerAll(user.Preferences.Authors)

	candidates := make([]scored, 0, len(books))
	for _, b := range books {
		if b == nil || b.OwnerID == user.ID {
			continue
		}
		score := 0.0
		if matchesAny(b.Genre, prefGenres) {
			score += 2
		}
		if matchesAny(b.Author, prefAuthors) {
			score += 2
		}
		score += b.Rating * 0.2
		score += float64(b.Reviews) * 0.01
		if b.Available {
			score += 0.5
		}
		candidates = append(candidates, scored{id: b.ID, score: score})
	}

	return topIDs(candidates, topK)
}

// ScoreCircles ranks candidate circles against the user's preferred genres
// and returns the top-K circle IDs. Circles the user already joined are
// excluded. A genre mention in the description dominates; member count breaks
// ties. Equal scores keep the input order.
func ScoreCircles(user *entity.User, circles []*entity.ReadingCircle, topK int) []string {
	if topK <= 0 {
		topK = DefaultCircleTopK
	}

	joined := make(map[string]struct{}, len(user.CirclesJoined))
	for _, id := range user.CirclesJoined {
		joined[id] = struct{}{}
	}

	prefGenres := lowerAll(user.Preferences.Genres)

	candidates := make([]scored, 0, len(circles))
	for _, c := range circles {
		if c == nil {
			continue
		}
		if _, ok := joined[c.ID]; ok {
			continue
		}
		score := 0.0
		if matchesAny(c.Description, prefGenres) {
			score += 2
		}
		score += float64(c.MemberCount()) * 0.01
		candidates = append(candidates, scored{id: c.ID, score: score})
	}

	return topIDs(candidates, topK)
}
