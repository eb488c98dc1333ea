package engine

import (
	"math/rand"
	"time"
)

// SpyRole is the sentinel role handed to the spy. It never appears in any
// location's role pool.
const SpyRole = "Spy"

// MinPlayers is the minimum table size for a round.
const MinPlayers = 3

type Player struct {
	ID   string
	Name string
}

// Table is the static location/role lookup the assignment draws from.
type Table interface {
	All() []string
	RolePool(location string) []string
}

// Assignment is the secret setup of one round: the chosen location, who the
// spy is, each player's role, and a snapshot of display names taken at start
// so players who leave mid-game still show up in the reveal.
type Assignment struct {
	Location    string
	SpyID       string
	Roles       map[string]string
	PlayerNames map[string]string
}

// Assign deals one round: a uniformly random location, a uniformly random
// spy, and a unique role for every other player drawn from the location's
// pool via a Fisher–Yates shuffle. The source is re-seeded per call so no
// two rounds replay the same deal.
func Assign(players []Player, table Table) (*Assignment, error) {
	if len(players) < MinPlayers {
		return nil, ErrInsufficientPlayers
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	locs := table.All()
	location := locs[rng.Intn(len(locs))]
	spyID := players[rng.Intn(len(players))].ID

	pool := table.RolePool(location)
	if len(players)-1 > len(pool) {
		return nil, ErrTooManyPlayers
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	a := &Assignment{
		Location:    location,
		SpyID:       spyID,
		Roles:       make(map[string]string, len(players)),
		PlayerNames: make(map[string]string, len(players)),
	}

	next := 0
	for _, p := range players {
		a.PlayerNames[p.ID] = p.Name
		if p.ID == spyID {
			a.Roles[p.ID] = SpyRole
			continue
		}
		a.Roles[p.ID] = pool[next]
		next++
	}
	return a, nil
}
