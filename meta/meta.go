// meta/meta.go
package meta

// DEPTH defines the default lookahead for adversarial searchers, in full rounds.
const DEPTH = 2

// MOVE_RATE defines how many A* steps pass between goal relocations.
const MOVE_RATE = 4

// MAX_TURNS caps the number of rounds a local game runs before it is called a draw.
const MAX_TURNS = 300

// SEED is the default seed for random agents.
const SEED = 42
