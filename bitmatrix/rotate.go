package bitmatrix

// Rot90 simulates a physical rotation of the printed pattern by k quarter
// turns, counterclockwise for positive k and clockwise for negative k.
//
// Rotating paper moves the dots to new grid positions and changes how each
// dot displacement reads: a displacement that pointed up reads as left
// after one counterclockwise turn. Rot90 therefore rotates the cell grid
// and remaps every cell's bits through the direction tables, so the result
// is exactly the matrix a camera would observe on rotated paper.
func (m *BitMatrix) Rot90(k int) *BitMatrix {
	k = ((k % 4) + 4) % 4

	rot := m.rotateCells(k)
	for i, v := range rot.cells {
		d := (int(num2dir[v]) - k + 4) % 4
		rot.cells[i] = dir2num[d]
	}

	return rot
}

// rotateCells rotates the cell grid by k*90° counterclockwise without
// touching the per-cell bits.
func (m *BitMatrix) rotateCells(k int) *BitMatrix {
	h, w := m.rows, m.cols

	switch k {
	case 1:
		out := New(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.cells[(w-1-x)*h+y] = m.cells[y*w+x]
			}
		}

		return out
	case 2:
		out := New(h, w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.cells[(h-1-y)*w+(w-1-x)] = m.cells[y*w+x]
			}
		}

		return out
	case 3:
		out := New(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.cells[x*h+(h-1-y)] = m.cells[y*w+x]
			}
		}

		return out
	default:
		return m.Clone()
	}
}
