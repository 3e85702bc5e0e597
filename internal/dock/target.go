package dock

import (
	"errors"
	"fmt"

	"github.com/atomicstack/paneldock/internal/tiles"
)

// Tier is the selector step that produced a destination.
type Tier int

const (
	TierExplicit Tier = iota + 1
	TierRemembered
	TierFirstAccepting
	TierNewRoot
)

func (t Tier) String() string {
	switch t {
	case TierExplicit:
		return "explicit"
	case TierRemembered:
		return "remembered"
	case TierFirstAccepting:
		return "first-accepting"
	case TierNewRoot:
		return "new-root"
	default:
		return "none"
	}
}

// ErrStaleTarget is returned when an explicit destination is gone or does
// not accept leaves.
var ErrStaleTarget = errors.New("explicit dock target is not an accepting container")

// Selection is the outcome of SelectTarget. Created is set when the selector
// had to add a container, so a failed insert can prune it again.
type Selection struct {
	Container tiles.Ref
	Tier      Tier
	Created   bool
}

// accepts reports whether ref is a live container that takes leaves.
func accepts(tree TileTree, ref tiles.Ref) bool {
	if ref == 0 || !tree.Exists(ref) {
		return false
	}
	kind, ok := tree.KindOf(ref)
	return ok && kind.AcceptsLeaves()
}

// SelectTarget picks the container a panel docks into. A non-zero explicit
// container must be valid or the selection fails; otherwise the remembered
// container is tried, then the first tab group in order, and finally a new
// tab group is added at the root.
func SelectTarget(tree TileTree, explicit, remembered tiles.Ref, order tiles.Order) (Selection, error) {
	if explicit != 0 {
		if !accepts(tree, explicit) {
			return Selection{}, fmt.Errorf("target %s: %w", explicit, ErrStaleTarget)
		}
		return Selection{Container: explicit, Tier: TierExplicit}, nil
	}
	if accepts(tree, remembered) {
		return Selection{Container: remembered, Tier: TierRemembered}, nil
	}
	if ref, ok := tree.FirstContainerOfKind(tiles.KindTabs, order); ok {
		return Selection{Container: ref, Tier: TierFirstAccepting}, nil
	}
	ref, err := tree.AddRootContainer(tiles.KindTabs)
	if err != nil {
		return Selection{}, fmt.Errorf("create root tab group: %w", err)
	}
	return Selection{Container: ref, Tier: TierNewRoot, Created: true}, nil
}
