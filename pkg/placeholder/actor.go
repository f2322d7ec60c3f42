package placeholder

import (
	"fmt"

	"github.com/google/uuid"
)

// Actor is the entity placeholders are resolved on behalf of. Only OfflinePlayer carries any information a Provider
// can use, every other Actor is looked up anonymously.
type Actor interface {
	actor()
	fmt.Stringer
}

// Anonymous is an Actor with no identity at all
type Anonymous struct{}

func (Anonymous) actor()         {}
func (Anonymous) String() string { return "anonymous" }

// OfflinePlayer is a player identity that can be used for lookups whether or not the player is connected
type OfflinePlayer struct {
	ID   uuid.UUID
	Name string
}

func (OfflinePlayer) actor() {}

func (p OfflinePlayer) String() string { return fmt.Sprintf("%s (%s)", p.Name, p.ID) }

// NewOfflinePlayer creates an OfflinePlayer from a name and a textual UUID
func NewOfflinePlayer(name, id string) (*OfflinePlayer, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid for player %q: %w", name, err)
	}

	return &OfflinePlayer{ID: parsed, Name: name}, nil
}

// OtherActor is any actor that is not a player, such as the console or a command block
type OtherActor struct {
	Kind string
	Name string
}

func (OtherActor) actor() {}

func (o OtherActor) String() string { return o.Kind + ":" + o.Name }

// playerOf returns the OfflinePlayer wrapped by the given actor, or nil when the actor is absent or of another kind.
// Pointers are passed through as is
func playerOf(a Actor) *OfflinePlayer {
	switch p := a.(type) {
	case *OfflinePlayer:
		return p
	case OfflinePlayer:
		return &p
	default:
		return nil
	}
}
