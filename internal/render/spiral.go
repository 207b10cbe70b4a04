package render

// Spiral numbers a side x side grid from 1 at the top-left corner, winding
// clockwise towards the centre.
func Spiral(side int) [][]int {
	grid := make([][]int, side)
	for i := range grid {
		grid[i] = make([]int, side)
	}

	// right, down, left, up
	directions := [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	row, col, dir := 0, 0, 0

	for value := 1; value <= side*side; value++ {
		grid[row][col] = value

		nextRow, nextCol := row+directions[dir][0], col+directions[dir][1]
		if nextRow < 0 || nextRow >= side || nextCol < 0 || nextCol >= side || grid[nextRow][nextCol] != 0 {
			dir = (dir + 1) % len(directions)
			nextRow, nextCol = row+directions[dir][0], col+directions[dir][1]
		}

		row, col = nextRow, nextCol
	}

	return grid
}
