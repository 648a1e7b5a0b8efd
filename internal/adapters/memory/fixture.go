package memory

import "dragdeck/internal/domain"

// SampleBoard returns the three-column demo board the TUI and the seed
// command start from.
func SampleBoard() domain.Board {
	return domain.Board{
		Lists: []domain.BoardList{
			{
				ID:    "todo",
				Title: "To Do",
				Cards: []domain.Card{
					{ID: "groceries", Title: "Buy groceries", Note: "milk, eggs, coffee"},
					{ID: "taxes", Title: "File taxes"},
					{ID: "bike", Title: "Fix bike brakes"},
				},
			},
			{
				ID:    "doing",
				Title: "Doing",
				Cards: []domain.Card{
					{ID: "report", Title: "Quarterly report", Note: "draft due Friday"},
				},
			},
			{
				ID:    "done",
				Title: "Done",
			},
		},
	}
}
