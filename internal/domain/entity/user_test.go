package entity

import "testing"

func TestUser_HasJoined(t *testing.T) {
	user := &User{CirclesJoined: []string{"c-1", "c-2"}}
	if !user.HasJoined("c-1") {
		t.Error("HasJoined(c-1) = false, want true")
	}
	if user.HasJoined("c-3") {
		t.Error("HasJoined(c-3) = true, want false")
	}
}

func TestUser_RemoveCircle(t *testing.T) {
	user := &User{CirclesJoined: []string{"c-1", "c-2", "c-1"}}
	user.RemoveCircle("c-1")
	if len(user.CirclesJoined) != 1 || user.CirclesJoined[0] != "c-2" {
		t.Errorf("RemoveCircle() CirclesJoined = %v, want [c-2]", user.CirclesJoined)
	}

	// Removing an absent circle is a no-op.
	user.RemoveCircle("c-9")
	if len(user.CirclesJoined) != 1 {
		t.Errorf("RemoveCircle() CirclesJoined = %v, want [c-2]", user.CirclesJoined)
	}
}

func TestUser_HasFavorite(t *testing.T) {
	user := &User{Favorites: []string{"b-1"}}
	if !user.HasFavorite("b-1") {
		t.Error("HasFavorite(b-1) = false, want true")
	}
	if user.HasFavorite("b-2") {
		t.Error("HasFavorite(b-2) = true, want false")
	}
}
