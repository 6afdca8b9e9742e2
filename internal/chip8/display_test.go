package chip8

import "testing"

func TestDisplaySetGetPixel(t *testing.T) {
	d := NewDisplay()
	if d.GetPixel(0, 0) {
		t.Errorf("new display should have all pixels off")
	}
	d.SetPixel(3, 4, true)
	if !d.GetPixel(3, 4) {
		t.Errorf("SetPixel(3,4,true) did not stick")
	}
}

func TestDisplayClearSetsEveryPixelFalse(t *testing.T) {
	d := NewDisplay()
	for x := 0; x < DisplayWidth; x++ {
		for y := 0; y < DisplayHeight; y++ {
			d.SetPixel(x, y, true)
		}
	}
	d.Clear()
	for x := 0; x < DisplayWidth; x++ {
		for y := 0; y < DisplayHeight; y++ {
			if d.GetPixel(x, y) {
				t.Fatalf("pixel (%d,%d) still on after Clear", x, y)
			}
		}
	}
}

func TestDisplayOutOfRangeIsFalse(t *testing.T) {
	d := NewDisplay()
	if d.GetPixel(-1, 0) {
		t.Errorf("out-of-range GetPixel should return false")
	}
	if d.GetPixel(DisplayWidth, 0) {
		t.Errorf("out-of-range GetPixel should return false")
	}
}

func TestDisplayEachWalksFullGrid(t *testing.T) {
	d := NewDisplay()
	d.SetPixel(DisplayWidth-1, DisplayHeight-1, true)

	seen := 0
	lastCornerOn := false
	d.Each(func(x, y int, on bool) {
		seen++
		if x == DisplayWidth-1 && y == DisplayHeight-1 {
			lastCornerOn = on
		}
	})

	if want := DisplayWidth * DisplayHeight; seen != want {
		t.Errorf("Each visited %d cells, want %d (full grid, not W-1 x H-1)", seen, want)
	}
	if !lastCornerOn {
		t.Errorf("Each never visited the last row/column's pixel")
	}
}
