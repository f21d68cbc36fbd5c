package recommend

import (
	"testing"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

func TestScoreBooks_PreferenceMatchWins(t *testing.T) {
	user := &entity.User{
		ID: "u-1",
		Preferences: entity.Preferences{
			Genres:  []string{"Fantasy"},
			Authors: []string{"Le Guin"},
		},
	}
	books := []*entity.Book{
		{ID: "b-popular", Genre: "History", Rating: 5, Reviews: 100, Available: true},
		{ID: "b-match", Genre: "Fantasy", Author: "Ursula K. Le Guin", Available: true},
	}

	ids := ScoreBooks(user, books, 2)
	if len(ids) != 2 {
		t.Fatalf("ScoreBooks() returned %d ids, want 2", len(ids))
	}
	if ids[0] != "b-match" {
		t.Errorf("ScoreBooks() top id = %v, want b-match", ids[0])
	}
}

func TestScoreBooks_ExcludesOwnBooks(t *testing.T) {
	user := &entity.User{ID: "u-1"}
	books := []*entity.Book{
		{ID: "b-mine", OwnerID: "u-1"},
		{ID: "b-other", OwnerID: "u-2"},
	}

	ids := ScoreBooks(user, books, 10)
	if len(ids) != 1 || ids[0] != "b-other" {
		t.Errorf("ScoreBooks() ids = %v, want [b-other]", ids)
	}
}

func TestScoreBooks_TopKLimit(t *testing.T) {
	user := &entity.User{ID: "u-1"}
	books := []*entity.Book{
		{ID: "b-1"}, {ID: "b-2"}, {ID: "b-3"},
	}

	ids := ScoreBooks(user, books, 2)
	if len(ids) != 2 {
		t.Errorf("ScoreBooks() returned %d ids, want 2", len(ids))
	}
}

func TestScoreBooks_DefaultTopK(t *testing.T) {
	user := &entity.User{ID: "u-1"}
	books := make([]*entity.Book, 0, DefaultBookTopK+3)
	for i := 0; i < DefaultBookTopK+3; i++ {
		books = append(books, &entity.Book{ID: string(rune('a' + i))})
	}

	ids := ScoreBooks(user, books, 0)
	if len(ids) != DefaultBookTopK {
		t.Errorf("ScoreBooks() returned %d ids, want %d", len(ids), DefaultBookTopK)
	}
}

func TestScoreBooks_StableForEqualScores(t *testing.T) {
	user := &entity.User{ID: "u-1"}
	books := []*entity.Book{
		{ID: "b-first"}, {ID: "b-second"}, {ID: "b-third"},
	}

	ids := ScoreBooks(user, books, 3)
	want := []string{"b-first", "b-second", "b-third"}
	for i, id := range ids {
		if id != want[i] {
			t.Fatalf("ScoreBooks() ids = %v, want %v", ids, want)
		}
	}
}

func TestScoreCircles_DescriptionMatchWins(t *testing.T) {
	user := &entity.User{
		ID: "u-1",
		Preferences: entity.Preferences{
			Genres: []string{"mystery"},
		},
	}
	circles := []*entity.ReadingCircle{
		{ID: "c-big", Description: "General fiction", MembersCount: 500},
		{ID: "c-match", Description: "Murder mystery book club", MembersCount: 3},
	}

	ids := ScoreCircles(user, circles, 2)
	if ids[0] != "c-match" {
		t.Errorf("ScoreCircles() top id = %v, want c-match", ids[0])
	}
}

func TestScoreCircles_ExcludesJoined(t *testing.T) {
	user := &entity.User{ID: "u-1", CirclesJoined: []string{"c-joined"}}
	circles := []*entity.ReadingCircle{
		{ID: "c-joined"},
		{ID: "c-open"},
	}

	ids := ScoreCircles(user, circles, 10)
	if len(ids) != 1 || ids[0] != "c-open" {
		t.Errorf("ScoreCircles() ids = %v, want [c-open]", ids)
	}
}

func TestScoreCircles_MemberCountFallback(t *testing.T) {
	// A circle written before the cached counter existed still ranks by its
	// members list length.
	user := &entity.User{ID: "u-1"}
	circles := []*entity.ReadingCircle{
		{ID: "c-empty"},
		{ID: "c-legacy", Members: []string{"a", "b", "c"}},
	}

	ids := ScoreCircles(user, circles, 2)
	if ids[0] != "c-legacy" {
		t.Errorf("ScoreCircles() top id = %v, want c-legacy", ids[0])
	}
}
