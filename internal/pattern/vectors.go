package pattern

// Position is a 0-indexed (row, column) pair on a size x size board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index returns the row-major cell index of the position.
func (that Position) Index(size int) int {
	return that.Row*size + that.Col
}

// Vector is an ordered run of positions lying on one straight line.
type Vector []Position

// Horizontal returns one vector per row, left to right.
func Horizontal(size int) []Vector {
	vectors := make([]Vector, 0, size)
	for row := range size {
		vector := make(Vector, 0, size)
		for col := range size {
			vector = append(vector, Position{Row: row, Col: col})
		}
		vectors = append(vectors, vector)
	}

	return vectors
}

// Vertical returns one vector per column, top to bottom.
func Vertical(size int) []Vector {
	vectors := make([]Vector, 0, size)
	for col := range size {
		vector := make(Vector, 0, size)
		for row := range size {
			vector = append(vector, Position{Row: row, Col: col})
		}
		vectors = append(vectors, vector)
	}

	return vectors
}

// DiagonalDown returns the top-left to bottom-right diagonals (col - row == d)
// that are at least winningLen cells long, ordered by d ascending.
func DiagonalDown(size, winningLen int) []Vector {
	span := size - winningLen
	if span < 0 {
		return nil
	}

	vectors := make([]Vector, 0, 2*span+1)
	for d := -span; d <= span; d++ {
		vector := make(Vector, 0, size-abs(d))
		for row := max(0, -d); row < min(size, size-d); row++ {
			vector = append(vector, Position{Row: row, Col: row + d})
		}
		vectors = append(vectors, vector)
	}

	return vectors
}

// DiagonalUp returns the top-right to bottom-left diagonals (row + col == k)
// that are at least winningLen cells long, ordered by k ascending.
func DiagonalUp(size, winningLen int) []Vector {
	span := size - winningLen
	if span < 0 {
		return nil
	}

	vectors := make([]Vector, 0, 2*span+1)
	for k := winningLen - 1; k <= 2*size-winningLen-1; k++ {
		vector := make(Vector, 0, size)
		for row := max(0, k-size+1); row <= min(size-1, k); row++ {
			vector = append(vector, Position{Row: row, Col: k - row})
		}
		vectors = append(vectors, vector)
	}

	return vectors
}

// PositionVectors returns every line that can hold a winning run: rows,
// columns, then both diagonal families.
func PositionVectors(size, winningLen int) []Vector {
	var vectors []Vector
	vectors = append(vectors, Horizontal(size)...)
	vectors = append(vectors, Vertical(size)...)
	vectors = append(vectors, DiagonalDown(size, winningLen)...)
	vectors = append(vectors, DiagonalUp(size, winningLen)...)

	return vectors
}

// WinVector marks which slots of a line belong to the winning run.
type WinVector []bool

// Offset returns the index of the first marker slot, or -1 if there is none.
func (that WinVector) Offset() int {
	for i, marked := range that {
		if marked {
			return i
		}
	}

	return -1
}

// WinVectors enumerates every placement of one contiguous run of winningLen
// markers inside a line of lineLength slots, one per left offset.
func WinVectors(lineLength, winningLen int) []WinVector {
	if winningLen <= 0 || winningLen > lineLength {
		return nil
	}

	vectors := make([]WinVector, 0, lineLength-winningLen+1)
	for offset := 0; offset <= lineLength-winningLen; offset++ {
		vector := make(WinVector, lineLength)
		for i := offset; i < offset+winningLen; i++ {
			vector[i] = true
		}
		vectors = append(vectors, vector)
	}

	return vectors
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
