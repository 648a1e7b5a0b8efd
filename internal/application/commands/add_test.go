package commands

import (
	"context"
	"errors"
	"testing"

	"dragdeck/internal/application"
	"dragdeck/internal/domain"
)

func TestAddCardCommand_Execute(t *testing.T) {
	t.Run("appends to the list", func(t *testing.T) {
		repo := testRepo()
		result, err := NewAddCardCommand(repo, "todo", "Water the plants").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Card.ID != "water-the-plants" {
			t.Errorf("derived ID = %s", result.Card.ID)
		}

		board, _ := repo.Load()
		l, _ := board.List("todo")
		if len(l.Cards) != 3 || l.Cards[2].ID != "water-the-plants" {
			t.Errorf("todo = %+v", l.Cards)
		}
	})

	t.Run("derived IDs are deduplicated", func(t *testing.T) {
		repo := testRepo()
		ctx := context.Background()
		first, err := NewAddCardCommand(repo, "todo", "Same title").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := NewAddCardCommand(repo, "done", "Same title").Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Card.ID == second.Card.ID {
			t.Errorf("expected distinct IDs, both %s", first.Card.ID)
		}
		if second.Card.ID != "same-title-2" {
			t.Errorf("second ID = %s", second.Card.ID)
		}
	})

	t.Run("explicit duplicate ID is rejected", func(t *testing.T) {
		cmd := NewAddCardCommand(testRepo(), "todo", "Another X")
		cmd.CardID = "x"
		_, err := cmd.Execute(context.Background())
		if !errors.Is(err, application.ErrDuplicateCard) {
			t.Errorf("expected ErrDuplicateCard, got %v", err)
		}
	})

	t.Run("unknown list", func(t *testing.T) {
		_, err := NewAddCardCommand(testRepo(), "nope", "Title").Execute(context.Background())
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		_, err := NewAddCardCommand(testRepo(), "todo", "   ").Execute(context.Background())
		var valErr *application.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Water the plants", "water-the-plants"},
		{"  Mixed  CASE  42 ", "mixed-case-42"},
		{"éàè!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveCardCommand_Execute(t *testing.T) {
	t.Run("removes the card", func(t *testing.T) {
		repo := testRepo()
		result, err := NewRemoveCardCommand(repo, "x").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Card.ID != domain.ItemID("x") {
			t.Errorf("removed %s", result.Card.ID)
		}

		board, _ := repo.Load()
		l, _ := board.List("todo")
		if len(l.Cards) != 1 || l.Cards[0].ID != "y" {
			t.Errorf("todo = %+v", l.Cards)
		}
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := NewRemoveCardCommand(testRepo(), "ghost").Execute(context.Background())
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
