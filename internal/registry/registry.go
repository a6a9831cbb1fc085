// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
)

// Game is the contract between an engine and the presentation adapters.
// Engines contain pure logic; adapters map input to signals, drive the
// clock and draw Frame().
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake", "tetris").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh NotStarted session. The high score survives.
	Reset()

	// HandleSignal applies one input signal. held reports whether the
	// Action key is being held down.
	HandleSignal(sig core.Signal, held bool)

	// ShouldAutoAdvance reports whether the engine's interval has elapsed
	// since its previous advance and consumes it if so.
	ShouldAutoAdvance(now time.Time) bool

	// Tick advances the engine when due. Reports whether anything moved.
	Tick(now time.Time) bool

	// Frame returns a copy of everything needed to draw the game.
	Frame() core.Frame

	// State returns the session state (score, level, lifecycle).
	State() core.Session
}

// HeldActioner is implemented by games whose Action does something extra
// while the key is held. Adapters that can tell a hold from a press only send
// repeated Actions to these games.
type HeldActioner interface {
	HoldsAction() bool
}

// WantsHeldAction reports whether g reacts to a held Action key.
func WantsHeldAction(g Game) bool {
	h, ok := g.(HeldActioner)
	return ok && h.HoldsAction()
}

// Deps carries what a factory needs to build an engine.
type Deps struct {
	Store  core.HighScoreStore // nil means nothing persists
	Logger *log.Logger         // nil means log.Default()
	Seed   int64               // 0 means seeded from the clock
	Config config.Config
}

// Rand returns the RNG for the deps' seed.
func (d Deps) Rand() *rand.Rand {
	seed := d.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Log returns the configured logger or the package default.
func (d Deps) Log() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(Deps) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	factories[info.ID] = f
	titles[info.ID] = info.Title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(deps), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
