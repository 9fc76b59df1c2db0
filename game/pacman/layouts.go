package pacman

import (
	"fmt"
	"slices"
)

var layouts = map[string][]string{
	"test": {
		"%%%%%",
		"% . %",
		"%.G.%",
		"% . %",
		"%. .%",
		"%   %",
		"%  .%",
		"%   %",
		"%P .%",
		"%%%%%",
	},
	"minimax": {
		"%%%%%%%%%",
		"%.P    G%",
		"% %.%%.%%",
		"%.%%....%",
		"% %%%%%.%",
		"%       %",
		"%%%%%%%%%",
	},
	"open": {
		"%%%%%%%%%%",
		"%P  .   .%",
		"% %% %%% %",
		"%.   G  .%",
		"% %%% %% %",
		"%.  .  G.%",
		"%%%%%%%%%%",
	},
	"duel": {
		"%%%%%%%",
		"%P . G%",
		"%.%%%.%",
		"%  .  %",
		"%%%%%%%",
	},
}

// Layout returns a fresh game for a built-in layout name.
func Layout(name string) (*State, error) {
	lines, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: no layout named %q", ErrInvalidLayout, name)
	}
	return Parse(slices.Clone(lines))
}

// LayoutNames lists the built-in layouts in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
