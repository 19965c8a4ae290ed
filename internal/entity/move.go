package entity

// Move is a single ply. It is only produced by GameState.MakeMoveTo.
type Move struct {
	mark     Mark
	position int
	before   GameState
	after    GameState
}

func (that Move) Mark() Mark {
	return that.mark
}

// Position is the row-major index the mark was placed at.
func (that Move) Position() int {
	return that.position
}

func (that Move) Before() GameState {
	return that.before
}

func (that Move) After() GameState {
	return that.after
}
