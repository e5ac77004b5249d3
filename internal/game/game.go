package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/shardshell/internal/mapload"
	"github.com/samdwyer/shardshell/internal/telemetry"
	"github.com/samdwyer/shardshell/internal/theme"
	"github.com/samdwyer/shardshell/internal/tile"
	"github.com/samdwyer/shardshell/internal/ui"
	"github.com/samdwyer/shardshell/internal/view"
	"github.com/samdwyer/shardshell/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	menu     *Menu
	grid     *world.Grid
	viewport *view.Viewport
	state    State
	running  bool
	menuSpan trace.Span
}

// New creates a new game on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing onto an initialized screen.
func NewWithScreen(cfg Config, screen *ui.Screen) (*Game, error) {
	themes, err := theme.LoadRegistry()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(themes); err != nil {
		return nil, err
	}
	glyphs, err := themes.Resolve(cfg.Theme)
	if err != nil {
		return nil, err
	}
	menu, err := NewMenu(cfg.Language)
	if err != nil {
		return nil, err
	}

	cells := tile.NewRenderer(glyphs)
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		menu:     menu,
		viewport: view.NewViewport(cfg.ViewWidth, cfg.ViewHeight, cells, glyphs.Marker),
		state:    StateExplore,
		running:  true,
	}, nil
}

// Init loads or generates the map and centres the viewport on the start cell.
func (g *Game) Init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	var startX, startY int
	if g.cfg.MapPath != "" {
		classifier, err := mapload.NewClassifier(g.cfg.WallColors...)
		if err != nil {
			return err
		}
		grid, err := mapload.LoadFile(ctx, g.cfg.MapPath, classifier)
		if err != nil {
			return err
		}
		g.grid = grid
		startX, startY = grid.Width()/2, grid.Height()/2
		span.SetAttributes(attribute.String("map.source", "file"))
	} else {
		seed := g.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		d := world.GenerateDungeon(ctx, g.cfg.MapWidth, g.cfg.MapHeight, rand.New(rand.NewSource(seed)))
		g.grid = d.Grid
		startX, startY = d.Start()
		span.SetAttributes(
			attribute.String("map.source", "generated"),
			attribute.Int64("map.seed", seed),
			attribute.Int("dungeon.rooms", len(d.Rooms)),
		)
	}

	g.viewport.CenterOn(startX, startY)

	span.SetAttributes(
		attribute.Int("viewer.start_x", startX),
		attribute.Int("viewer.start_y", startY),
	)
	log.Info().
		Int("start_x", startX).
		Int("start_y", startY).
		Msg("map ready")
	return nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.Init(ctx); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	for g.running {
		g.Draw()
		g.HandleEvent(ctx, g.screen.PollEvent())
	}

	g.endMenuSpan("quit")
	return nil
}

// Draw renders the current state.
func (g *Game) Draw() {
	switch g.state {
	case StateMenu:
		x, y := g.ViewerCell()
		g.renderer.RenderLines(g.menu.Lines(x, y))
	default:
		g.renderer.Render(g.grid, g.viewport)
	}
}

// HandleEvent processes a single terminal event.
func (g *Game) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		// Screen finalized
		g.running = false
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input for the current state.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if g.state == StateMenu {
		switch MenuIntent(ev).Action {
		case ActionQuit:
			g.running = false
		case ActionMenu:
			g.endMenuSpan("close")
			g.state = StateExplore
		}
		return
	}

	intent := ExploreIntent(ev)
	switch intent.Action {
	case ActionQuit:
		g.running = false
	case ActionMenu:
		_, g.menuSpan = telemetry.Tracer("game").Start(ctx, "game.menu")
		g.state = StateMenu
	case ActionPan:
		g.viewport.MoveBy(intent.DX, intent.DY)
		sx, sy := g.viewport.Scroll()
		log.Debug().Int("scroll_x", sx).Int("scroll_y", sy).Msg("pan")
	}
}

func (g *Game) endMenuSpan(action string) {
	if g.menuSpan == nil {
		return
	}
	g.menuSpan.SetAttributes(attribute.String("menu.action", action))
	g.menuSpan.End()
	g.menuSpan = nil
}

// ViewerCell returns the map cell under the centre marker.
func (g *Game) ViewerCell() (int, int) {
	return g.viewport.CenterCell()
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the loop should continue.
func (g *Game) Running() bool {
	return g.running
}

// Viewport returns the game's viewport.
func (g *Game) Viewport() *view.Viewport {
	return g.viewport
}

// Grid returns the loaded map, or nil before Init.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
