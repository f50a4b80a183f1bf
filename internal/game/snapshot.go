package game

// Snapshot captures the complete game state for determinism testing and
// replay verification.
type Snapshot struct {
	Tick      uint64
	Apples    int
	Resets    int
	SnakeLen  int
	TargetLen int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	Paused    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	food := g.food.Position()
	return Snapshot{
		Tick:      g.tick,
		Apples:    g.apples,
		Resets:    g.resets,
		SnakeLen:  g.snake.Len(),
		TargetLen: g.snake.Length(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.snake.Direction(),
		FoodX:     food.X,
		FoodY:     food.Y,
		Paused:    g.paused,
	}
}
