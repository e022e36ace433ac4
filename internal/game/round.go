package game

import (
	"fmt"
	"time"
)

// RoundState tracks where a round is in its lifecycle.
type RoundState int

const (
	StateIdle RoundState = iota
	StateRunning
	StateGameOver
)

func (s RoundState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// CollisionCause records what ended a round.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseWall
	CauseSelf
)

func (c CollisionCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	}
	return "unknown"
}

// TickResult summarizes one Advance call for the caller.
type TickResult struct {
	State RoundState
	Cause CollisionCause
	Eaten []Fruit
}

// Round wires the snake, the fruit spawner and a shared RNG into one
// playable round and drives them in a fixed order each tick. It is not
// safe for concurrent use; the caller owns the loop.
type Round struct {
	snake  *Snake
	fruits *FruitSystem
	bus    *EventBus
	rand   *Rand

	cfg     Config
	state   RoundState
	started bool
	cause   CollisionCause
	score   int
}

// NewRound validates cfg and assembles a round in StateIdle. A zero Seed
// draws one from the clock; any other value makes the round deterministic.
func NewRound(cfg Config) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := NewRand(seed)
	bus := NewEventBus()
	return &Round{
		snake:  NewSnake(cfg),
		fruits: NewFruitSystem(cfg, r, bus),
		bus:    bus,
		rand:   r,
		cfg:    cfg,
		state:  StateIdle,
	}, nil
}

// Start moves an idle round into play. In any other state it is a no-op.
func (rd *Round) Start() {
	if rd.state != StateIdle {
		return
	}
	rd.state = StateRunning
	rd.started = true
}

// ChangeDirection forwards a steering request to the snake. Requests are
// ignored unless the round is running, so a dead snake never moves.
func (rd *Round) ChangeDirection(d Direction) {
	if rd.state != StateRunning {
		return
	}
	rd.snake.ChangeDirection(d)
}

// Advance runs one simulation tick of dt seconds: movement and spawning
// first, then collisions in a fixed order. Boundary wins over self
// collision, and fruit is only consumed when the snake survives the tick.
// Outside StateRunning, or for non-positive dt, the world is frozen and
// Advance just reports.
func (rd *Round) Advance(dt float64) TickResult {
	if rd.state != StateRunning || dt <= 0 {
		return TickResult{State: rd.state, Cause: rd.cause}
	}

	rd.snake.Update(dt)
	rd.fruits.Update(dt, rd.snake.Cells())

	if rd.snake.HitsWall() {
		return rd.gameOver(CauseWall)
	}
	if rd.snake.HitsSelf() {
		return rd.gameOver(CauseSelf)
	}

	var eaten []Fruit
	head := rd.snake.Head().Rect(rd.cfg.CellSize)
	for _, f := range rd.fruits.Fruits() {
		if head.Intersects(f.Cell.Rect(f.Size)) {
			eaten = append(eaten, f)
		}
	}
	for _, f := range eaten {
		rd.fruits.Remove(f.ID)
		rd.snake.Grow()
		rd.score++
		rd.bus.Emit(Event{Type: EventFruitEaten, Cell: f.Cell, Fruit: f})
	}

	return TickResult{State: rd.state, Cause: rd.cause, Eaten: eaten}
}

func (rd *Round) gameOver(cause CollisionCause) TickResult {
	rd.state = StateGameOver
	rd.cause = cause
	rd.bus.Emit(Event{Type: EventGameOver, Cause: cause})
	return TickResult{State: rd.state, Cause: rd.cause}
}

// Reset restores the initial snake, clears all fruit, rearms the spawn
// countdown and zeroes the score. A round that has ever been started goes
// straight back into play; an idle round stays idle. The RNG keeps its
// sequence so consecutive rounds under one seed stay reproducible.
func (rd *Round) Reset() {
	rd.snake.Reset()
	rd.fruits.Reset()
	rd.cause = CauseNone
	rd.score = 0
	if rd.started {
		rd.state = StateRunning
	} else {
		rd.state = StateIdle
	}
}

func (rd *Round) State() RoundState     { return rd.state }
func (rd *Round) Cause() CollisionCause { return rd.cause }
func (rd *Round) Score() int            { return rd.score }
func (rd *Round) Head() Cell            { return rd.snake.Head() }
func (rd *Round) SnakeCells() []Cell    { return rd.snake.Cells() }
func (rd *Round) SnakeLen() int         { return rd.snake.Len() }
func (rd *Round) Direction() Direction  { return rd.snake.Dir() }
func (rd *Round) Fruits() []Fruit       { return rd.fruits.Fruits() }
func (rd *Round) FruitCount() int       { return rd.fruits.Count() }

// Events exposes the round's bus so callers can observe spawns, eats and
// the end of the round without polling.
func (rd *Round) Events() *EventBus { return rd.bus }
