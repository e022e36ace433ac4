package game

import "github.com/google/uuid"

// Fruit is a single grid-aligned pickup, immutable once placed. ID is its
// identity for removal: two fruits may share a cell, never an ID.
type Fruit struct {
	ID   uuid.UUID
	Cell Cell
	Size int // box side in pixels, fixed at spawn
}

// FruitSystem owns the live fruit set and the spawn countdown. Each time
// the countdown crosses zero it runs one spawn cycle: a bounded number of
// uniform draws, rejecting cells occupied by the snake.
type FruitSystem struct {
	fruits    []Fruit
	countdown float64 // seconds until the next spawn cycle
	rand      *Rand
	bus       *EventBus // optional; nil disables notifications

	cfg Config
}

// NewFruitSystem starts with no fruit and a full countdown, so the first
// fruit appears only after one whole interval has elapsed.
func NewFruitSystem(cfg Config, r *Rand, bus *EventBus) *FruitSystem {
	return &FruitSystem{
		countdown: cfg.SpawnInterval,
		rand:      r,
		bus:       bus,
		cfg:       cfg,
	}
}

// Update advances the countdown by dt seconds. At or below zero it runs
// one spawn cycle against the given snake cells and rearms to the full
// interval, spawn and skip alike; time left over past zero is discarded.
// Non-positive dt is a no-op.
func (fs *FruitSystem) Update(dt float64, snake []Cell) {
	if dt <= 0 {
		return
	}
	fs.countdown -= dt
	if fs.countdown <= 0 {
		fs.spawn(snake)
		fs.countdown = fs.cfg.SpawnInterval
	}
}

// spawn draws random cells until one is free of the snake, then places a
// fruit there. Only the snake blocks placement, so fruits may stack on one
// cell. Running out of draws skips the cycle; that takes a snake covering
// nearly the whole field.
func (fs *FruitSystem) spawn(snake []Cell) {
	for tries := 0; tries < fs.cfg.SpawnAttempts; tries++ {
		c := Cell{
			Col: fs.rand.Intn(fs.cfg.MaxCol() + 1),
			Row: fs.rand.Intn(fs.cfg.MaxRow() + 1),
		}
		if occupied(c, snake) {
			continue
		}
		f := Fruit{ID: uuid.New(), Cell: c, Size: fs.cfg.CellSize}
		fs.fruits = append(fs.fruits, f)
		fs.emit(Event{Type: EventFruitSpawned, Cell: c, Fruit: f})
		return
	}
	fs.emit(Event{Type: EventSpawnStarved})
}

func occupied(c Cell, snake []Cell) bool {
	for _, s := range snake {
		if s == c {
			return true
		}
	}
	return false
}

// Remove deletes a fruit by identity. Unknown IDs are a no-op.
func (fs *FruitSystem) Remove(id uuid.UUID) {
	for i := range fs.fruits {
		if fs.fruits[i].ID == id {
			// Swap with the last element and truncate; order is not meaningful.
			fs.fruits[i] = fs.fruits[len(fs.fruits)-1]
			fs.fruits = fs.fruits[:len(fs.fruits)-1]
			return
		}
	}
}

// Clear drops all fruit but leaves the countdown running.
func (fs *FruitSystem) Clear() {
	fs.fruits = fs.fruits[:0]
}

// Reset drops all fruit and rearms the countdown to the full interval.
func (fs *FruitSystem) Reset() {
	fs.fruits = fs.fruits[:0]
	fs.countdown = fs.cfg.SpawnInterval
}

// Fruits returns a copy of the live fruit list. Mutating the returned
// slice does not affect the system.
func (fs *FruitSystem) Fruits() []Fruit {
	out := make([]Fruit, len(fs.fruits))
	copy(out, fs.fruits)
	return out
}

func (fs *FruitSystem) Count() int { return len(fs.fruits) }

func (fs *FruitSystem) emit(e Event) {
	if fs.bus != nil {
		fs.bus.Emit(e)
	}
}
