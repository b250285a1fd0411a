package ledger_test

import (
	"fmt"
	"time"

	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/ledger"
)

// seqIDGen hands out id-1, id-2, ... so transform outputs are predictable.
type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var testClock = func() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestEngine() *ledger.Engine {
	return ledger.NewEngine(&seqIDGen{}, testClock)
}

func member(id, name string, points int) entity.User {
	return entity.User{
		ID:     id,
		Name:   name,
		Role:   entity.UserRoleBoy,
		Points: points,
		Level:  entity.LevelForPoints(points),
	}
}

func admin(id, name string) entity.User {
	u := member(id, name, 0)
	u.Role = entity.UserRoleAdmin
	return u
}

func crewSnapshot(users ...entity.User) entity.Snapshot {
	return entity.Snapshot{Users: users}
}
