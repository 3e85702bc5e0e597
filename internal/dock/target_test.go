package dock_test

import (
	"errors"
	"testing"

	"github.com/atomicstack/paneldock/internal/dock"
	"github.com/atomicstack/paneldock/internal/tiles"
)

func TestSelectTargetTiers(t *testing.T) {
	tree := tiles.NewTree()
	root, _ := tree.AddContainer(0, tiles.KindHorizontal)
	split, _ := tree.AddContainer(root, tiles.KindVertical)
	deep, _ := tree.AddContainer(split, tiles.KindTabs)
	shallow, _ := tree.AddContainer(root, tiles.KindTabs)

	cases := []struct {
		name       string
		explicit   tiles.Ref
		remembered tiles.Ref
		order      tiles.Order
		want       tiles.Ref
		tier       dock.Tier
	}{
		{"explicit wins", shallow, deep, tiles.Preorder, shallow, dock.TierExplicit},
		{"remembered", 0, shallow, tiles.Preorder, shallow, dock.TierRemembered},
		{"remembered split is skipped", 0, split, tiles.Preorder, deep, dock.TierFirstAccepting},
		{"missing remembered preorder", 0, tiles.Ref(99), tiles.Preorder, deep, dock.TierFirstAccepting},
		{"missing remembered breadth-first", 0, tiles.Ref(99), tiles.BreadthFirst, shallow, dock.TierFirstAccepting},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := dock.SelectTarget(tree, tc.explicit, tc.remembered, tc.order)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sel.Container != tc.want || sel.Tier != tc.tier || sel.Created {
				t.Fatalf("expected %s via %s, got %#v", tc.want, tc.tier, sel)
			}
		})
	}

	if _, err := dock.SelectTarget(tree, split, 0, tiles.Preorder); !errors.Is(err, dock.ErrStaleTarget) {
		t.Fatalf("expected ErrStaleTarget for a split, got %v", err)
	}
	if _, err := dock.SelectTarget(tree, tiles.Ref(99), 0, tiles.Preorder); !errors.Is(err, dock.ErrStaleTarget) {
		t.Fatalf("expected ErrStaleTarget for a missing container, got %v", err)
	}
}

func TestSelectTargetCreatesRootWhenNoTabGroup(t *testing.T) {
	tree := tiles.NewTree()
	sel, err := dock.SelectTarget(tree, 0, tiles.Ref(5), tiles.Preorder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Tier != dock.TierNewRoot || !sel.Created || tree.Root() != sel.Container {
		t.Fatalf("expected a created root tab group, got %#v", sel)
	}
	again, _ := dock.SelectTarget(tree, 0, 0, tiles.Preorder)
	if again.Container != sel.Container || again.Created {
		t.Fatalf("expected the new tab group to be reused, got %#v", again)
	}
}
