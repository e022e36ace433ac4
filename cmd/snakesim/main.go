package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"snakesim/internal/game"
)

var (
	seedFlag = flag.Uint64("seed", 0, "RNG seed (0 reads SNAKESIM_SEED, then the clock)")
	duration = flag.Duration("duration", 5*time.Minute, "Simulated play time")
	tick     = flag.Duration("tick", 50*time.Millisecond, "Simulation step")
	rounds   = flag.Int("rounds", 0, "Stop after this many game overs (0 plays out the clock)")
	width    = flag.Int("width", game.DefaultPlayWidth, "Play field width in px")
	height   = flag.Int("height", game.DefaultPlayHeight, "Play field height in px")
	cell     = flag.Int("cell", game.DefaultCellSize, "Grid cell size in px")
	length   = flag.Int("length", game.DefaultSnakeLength, "Initial snake length in cells")
	speed    = flag.Float64("speed", game.DefaultSnakeSpeed, "Snake speed in px/s")
	interval = flag.Float64("interval", game.DefaultSpawnInterval, "Seconds between fruit spawns")
	verbose  = flag.Bool("v", false, "Log every spawn and eat")
)

func main() {
	flag.Parse()
	if *tick <= 0 {
		log.Fatalf("tick must be positive, got %v", *tick)
	}

	// Seed from flag, environment or clock.
	seed := *seedFlag
	if seed == 0 {
		if s := os.Getenv("SNAKESIM_SEED"); s != "" {
			if v, err := strconv.ParseUint(s, 10, 64); err == nil {
				seed = v
			}
		}
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := game.DefaultConfig()
	cfg.PlayWidth = *width
	cfg.PlayHeight = *height
	cfg.CellSize = *cell
	cfg.SnakeLength = *length
	cfg.SnakeSpeed = *speed
	cfg.SpawnInterval = *interval
	cfg.Seed = seed

	rd, err := game.NewRound(cfg)
	if err != nil {
		log.Fatalf("config rejected: %v", err)
	}
	log.Printf("seed %d, field %dx%d px, cell %d px", seed, cfg.PlayWidth, cfg.PlayHeight, cfg.CellSize)

	if *verbose {
		bus := rd.Events()
		bus.Subscribe(game.EventFruitSpawned, func(e game.Event) {
			log.Printf("fruit spawned at %v", e.Cell)
		})
		bus.Subscribe(game.EventFruitEaten, func(e game.Event) {
			log.Printf("fruit eaten at %v", e.Cell)
		})
		bus.Subscribe(game.EventSpawnStarved, func(game.Event) {
			log.Printf("no room to spawn fruit, skipping cycle")
		})
	}

	rd.Start()

	dt := tick.Seconds()
	ticks := int(*duration / *tick)
	var ran, played, eaten, best, longest int

	for i := 0; i < ticks; i++ {
		steer(rd, cfg)
		res := rd.Advance(dt)
		ran++
		eaten += len(res.Eaten)
		if l := rd.SnakeLen(); l > longest {
			longest = l
		}

		if res.State == game.StateGameOver {
			played++
			if score := rd.Score(); score > best {
				best = score
			}
			log.Printf("round %d over: hit %v, score %d, length %d", played, res.Cause, rd.Score(), rd.SnakeLen())
			if *rounds > 0 && played >= *rounds {
				break
			}
			rd.Reset()
		}
	}

	fmt.Printf("Simulation results:\n")
	fmt.Printf("  Simulated time: %v\n", time.Duration(ran)*(*tick))
	fmt.Printf("  Ticks:          %d\n", ran)
	fmt.Printf("  Rounds ended:   %d\n", played)
	fmt.Printf("  Fruit eaten:    %d\n", eaten)
	fmt.Printf("  Best score:     %d\n", best)
	fmt.Printf("  Longest snake:  %d cells\n", longest)
}

// steer points the snake at the nearest fruit, skipping moves that would
// reverse it or walk it straight into a wall or its own body. It never
// requests the current direction, which would trigger a boost step.
func steer(rd *game.Round, cfg game.Config) {
	head := rd.Head()
	cur := rd.Direction()

	var prefer []game.Direction
	if target, ok := nearestFruit(head, rd.Fruits()); ok {
		if target.Col < head.Col {
			prefer = append(prefer, game.DirLeft)
		}
		if target.Col > head.Col {
			prefer = append(prefer, game.DirRight)
		}
		if target.Row < head.Row {
			prefer = append(prefer, game.DirUp)
		}
		if target.Row > head.Row {
			prefer = append(prefer, game.DirDown)
		}
	}
	prefer = append(prefer, cur, game.DirUp, game.DirDown, game.DirLeft, game.DirRight)

	for _, d := range prefer {
		if d == cur.Opposite() {
			continue
		}
		if !safe(rd, cfg, head.Add(d)) {
			continue
		}
		if d != cur {
			rd.ChangeDirection(d)
		}
		return
	}
	// Boxed in; keep heading and let the round end.
}

// safe reports whether the snake can step onto next without dying.
func safe(rd *game.Round, cfg game.Config, next game.Cell) bool {
	if next.Col < 0 || next.Col > cfg.MaxCol() || next.Row < 0 || next.Row > cfg.MaxRow() {
		return false
	}
	for _, c := range rd.SnakeCells() {
		if c == next {
			return false
		}
	}
	return true
}

func nearestFruit(head game.Cell, fruits []game.Fruit) (game.Cell, bool) {
	var best game.Cell
	bestDist := 0
	found := false
	for _, f := range fruits {
		d := distance(head, f.Cell)
		if !found || d < bestDist {
			best, bestDist, found = f.Cell, d, true
		}
	}
	return best, found
}

func distance(a, b game.Cell) int {
	dc, dr := a.Col-b.Col, a.Row-b.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}
