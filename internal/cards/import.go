package cards

import (
	"github.com/google/uuid"

	"discard/internal/expiry"
	"discard/internal/notes/service"
)

// ImportResult counts what Import did with each card
type ImportResult struct {
	Added    int
	Existing int
	Expired  int
	Invalid  int
}

// Import adds the cards found in dir to repo. Expired cards, cards with a
// blank title and cards whose id is already present are skipped; cards
// without an id get a fresh one.
func Import(dir string, repo service.NoteRepository) (ImportResult, error) {
	var res ImportResult

	cards, err := Read(dir)
	if err != nil {
		return res, err
	}

	now := repo.Now()
	for _, c := range cards {
		n := c.Note
		switch {
		case n.Validate() != nil:
			res.Invalid++
			continue
		case expiry.IsExpired(n, now):
			res.Expired++
			continue
		}

		if n.ID == "" {
			n.ID = uuid.NewString()
		} else if _, ok := repo.Get(n.ID); ok {
			res.Existing++
			continue
		}

		repo.Add(n)
		res.Added++
	}
	return res, nil
}
