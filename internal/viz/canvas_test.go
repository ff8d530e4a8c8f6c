package viz

import "testing"

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %#x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("expected %#x, got %#x", 0x2801|0x80, c.Grid[0][0])
	}

	// Out of range is a no-op.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(8, 0)
	c.Set(0, 8)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(2, 2)
	c.Clear()

	for i, row := range c.Grid {
		for j, cell := range row {
			if cell != 0x2800 {
				t.Errorf("cell (%d,%d) not cleared: %#x", i, j, cell)
			}
		}
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(2, 1)

	// Corners given in either order fill the same rectangle.
	c.FillRect(3, 3, 0, 0)

	for col := 0; col < 2; col++ {
		if c.Grid[0][col] != 0x28ff {
			t.Errorf("cell %d not fully lit: %#x", col, c.Grid[0][col])
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)

	c.DrawLine(0, 0, 7, 0)

	for col := 0; col < 4; col++ {
		want := rune(0x2800 | pixelMap[0][0] | pixelMap[0][1])
		if c.Grid[0][col] != want {
			t.Errorf("cell %d: expected %#x, got %#x", col, want, c.Grid[0][col])
		}
	}
}
