package game

import (
	"testing"

	"github.com/google/uuid"
)

func smallFieldConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PlayWidth = 80 // 4x4 cells
	cfg.PlayHeight = 80
	cfg.SnakeLength = 1
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return cfg
}

// gridCells returns every cell of the field except skip. Pass an
// off-field skip to cover the whole grid.
func gridCells(cfg Config, skip Cell) []Cell {
	var out []Cell
	for col := 0; col <= cfg.MaxCol(); col++ {
		for row := 0; row <= cfg.MaxRow(); row++ {
			if c := (Cell{Col: col, Row: row}); c != skip {
				out = append(out, c)
			}
		}
	}
	return out
}

func TestFruitCountdownTiming(t *testing.T) {
	fs := NewFruitSystem(DefaultConfig(), NewRand(1), nil)

	fs.Update(4.9, nil)
	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d at 4.9s, want 0", got)
	}

	fs.Update(0.2, nil)
	if got := fs.Count(); got != 1 {
		t.Fatalf("Count() = %d at 5.1s, want 1", got)
	}

	// The countdown rearmed to the full interval; the 0.1s overshoot
	// was discarded, not credited.
	fs.Update(4.9, nil)
	if got := fs.Count(); got != 1 {
		t.Fatalf("Count() = %d, overshoot leaked into the next cycle", got)
	}
	fs.Update(0.2, nil)
	if got := fs.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestFruitFirstSpawnWaitsFullInterval(t *testing.T) {
	fs := NewFruitSystem(DefaultConfig(), NewRand(1), nil)

	fs.Update(4.5, nil)
	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d before the first interval elapsed, want 0", got)
	}
	fs.Update(0.5, nil) // lands exactly on the interval
	if got := fs.Count(); got != 1 {
		t.Errorf("Count() = %d at the first interval, want 1", got)
	}
}

func TestFruitOneSpawnCyclePerUpdate(t *testing.T) {
	// A huge dt still triggers at most one cycle per call.
	fs := NewFruitSystem(DefaultConfig(), NewRand(1), nil)
	fs.Update(12.0, nil)
	if got := fs.Count(); got != 1 {
		t.Errorf("Count() = %d after one 12s update, want 1", got)
	}
}

func TestFruitUpdateIgnoresNonPositiveDt(t *testing.T) {
	fs := NewFruitSystem(DefaultConfig(), NewRand(1), nil)
	fs.Update(4.5, nil)

	fs.Update(0, nil)
	fs.Update(-5, nil)
	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d, non-positive dt advanced the countdown", got)
	}

	fs.Update(0.5, nil)
	if got := fs.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestFruitSpawnAvoidsSnake(t *testing.T) {
	cfg := smallFieldConfig(t)
	free := Cell{Col: 2, Row: 1}
	snake := gridCells(cfg, free) // snake everywhere but one cell

	for seed := uint64(1); seed <= 50; seed++ {
		fs := NewFruitSystem(cfg, NewRand(seed), nil)
		fs.Update(cfg.SpawnInterval, snake)

		fruits := fs.Fruits()
		if len(fruits) != 1 {
			t.Fatalf("seed %d: Count() = %d, want 1", seed, len(fruits))
		}
		if got := fruits[0].Cell; got != free {
			t.Fatalf("seed %d: fruit at %v, the only free cell is %v", seed, got, free)
		}
	}
}

func TestFruitSpawnAvoidsRandomSnakes(t *testing.T) {
	// Random occupancy patterns, one per seed. The spawned fruit may
	// never land on a snake cell.
	cfg := smallFieldConfig(t)
	all := gridCells(cfg, Cell{Col: -1, Row: -1})

	for seed := uint64(1); seed <= 100; seed++ {
		r := NewRand(seed)
		var snake []Cell
		for _, c := range all {
			if r.Intn(2) == 0 {
				snake = append(snake, c)
			}
		}

		fs := NewFruitSystem(cfg, r, nil)
		fs.Update(cfg.SpawnInterval, snake)

		for _, f := range fs.Fruits() {
			if occupied(f.Cell, snake) {
				t.Fatalf("seed %d: fruit spawned on the snake at %v", seed, f.Cell)
			}
		}
	}
}

func TestFruitSpawnStarvationSkipsCycle(t *testing.T) {
	cfg := smallFieldConfig(t)
	full := gridCells(cfg, Cell{Col: -1, Row: -1})

	bus := NewEventBus()
	starved, spawned := 0, 0
	bus.Subscribe(EventSpawnStarved, func(Event) { starved++ })
	bus.Subscribe(EventFruitSpawned, func(Event) { spawned++ })

	fs := NewFruitSystem(cfg, NewRand(1), bus)
	fs.Update(cfg.SpawnInterval, full)

	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d on a full board, want 0", got)
	}
	if starved != 1 || spawned != 0 {
		t.Fatalf("starved = %d, spawned = %d, want 1 and 0", starved, spawned)
	}

	// The skipped cycle still rearmed the countdown.
	fs.Update(cfg.SpawnInterval-0.1, nil)
	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d, countdown was not rearmed after the skip", got)
	}
	fs.Update(0.1, nil)
	if got := fs.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1 once the board has room", got)
	}
}

func TestFruitsMayShareACell(t *testing.T) {
	// Only the snake blocks placement, so successive cycles may stack
	// fruit on the one free cell.
	cfg := smallFieldConfig(t)
	free := Cell{Col: 0, Row: 0}
	snake := gridCells(cfg, free)

	fs := NewFruitSystem(cfg, NewRand(9), nil)
	fs.Update(cfg.SpawnInterval, snake)
	fs.Update(cfg.SpawnInterval, snake)

	fruits := fs.Fruits()
	if len(fruits) != 2 {
		t.Fatalf("Count() = %d, want 2", len(fruits))
	}
	if fruits[0].Cell != free || fruits[1].Cell != free {
		t.Errorf("fruits at %v and %v, want both on %v", fruits[0].Cell, fruits[1].Cell, free)
	}
	if fruits[0].ID == fruits[1].ID {
		t.Error("stacked fruits share an ID")
	}
}

func TestFruitSpawnedEventPayload(t *testing.T) {
	cfg := DefaultConfig()
	bus := NewEventBus()
	var got []Event
	bus.Subscribe(EventFruitSpawned, func(e Event) { got = append(got, e) })

	fs := NewFruitSystem(cfg, NewRand(4), bus)
	fs.Update(cfg.SpawnInterval, nil)

	if len(got) != 1 {
		t.Fatalf("spawned events = %d, want 1", len(got))
	}
	e := got[0]
	if e.Fruit.ID == uuid.Nil {
		t.Error("spawned fruit has a nil ID")
	}
	if e.Fruit.Cell != e.Cell {
		t.Errorf("event cell %v does not match fruit cell %v", e.Cell, e.Fruit.Cell)
	}
	if e.Fruit.Size != cfg.CellSize {
		t.Errorf("fruit size = %d, want %d", e.Fruit.Size, cfg.CellSize)
	}
}

func TestFruitRemove(t *testing.T) {
	cfg := DefaultConfig()
	fs := NewFruitSystem(cfg, NewRand(2), nil)
	fs.Update(cfg.SpawnInterval, nil)
	fs.Update(cfg.SpawnInterval, nil)

	fruits := fs.Fruits()
	if len(fruits) != 2 {
		t.Fatalf("Count() = %d, want 2", len(fruits))
	}

	fs.Remove(fruits[0].ID)
	left := fs.Fruits()
	if len(left) != 1 {
		t.Fatalf("Count() = %d after remove, want 1", len(left))
	}
	if left[0].ID != fruits[1].ID {
		t.Errorf("wrong fruit removed, %v survived", left[0].ID)
	}

	fs.Remove(uuid.New()) // unknown ID
	if got := fs.Count(); got != 1 {
		t.Errorf("Count() = %d after removing an unknown ID, want 1", got)
	}
}

func TestFruitClearKeepsCountdown(t *testing.T) {
	cfg := DefaultConfig()
	fs := NewFruitSystem(cfg, NewRand(2), nil)
	fs.Update(cfg.SpawnInterval, nil) // one fruit, countdown rearmed
	fs.Update(4.0, nil)               // 1s left on the countdown

	fs.Clear()
	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d after clear, want 0", got)
	}

	fs.Update(1.0, nil)
	if got := fs.Count(); got != 1 {
		t.Errorf("Count() = %d, clear must not rearm the countdown", got)
	}
}

func TestFruitResetRearmsCountdown(t *testing.T) {
	cfg := DefaultConfig()
	fs := NewFruitSystem(cfg, NewRand(2), nil)
	fs.Update(cfg.SpawnInterval, nil)
	fs.Update(4.0, nil) // 1s left

	fs.Reset()
	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d after reset, want 0", got)
	}

	fs.Update(1.0, nil)
	if got := fs.Count(); got != 0 {
		t.Fatalf("Count() = %d, reset must rearm the full interval", got)
	}
	fs.Update(4.0, nil)
	if got := fs.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1 a full interval after reset", got)
	}
}

func TestFruitSnapshotIsACopy(t *testing.T) {
	cfg := DefaultConfig()
	fs := NewFruitSystem(cfg, NewRand(2), nil)
	fs.Update(cfg.SpawnInterval, nil)

	snap := fs.Fruits()
	snap[0].Cell = Cell{Col: 99, Row: 99}

	if got := fs.Fruits()[0].Cell; got == (Cell{Col: 99, Row: 99}) {
		t.Error("mutating the snapshot reached the system")
	}
}
