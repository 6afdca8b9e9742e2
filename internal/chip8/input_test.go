package chip8

import "testing"

type fakeSource struct {
	events []KeyEvent
	quit   bool
}

func (f *fakeSource) PollEvents() []KeyEvent { return f.events }
func (f *fakeSource) ShouldQuit() bool       { return f.quit }

func TestInputRefreshSetsHexKeyState(t *testing.T) {
	in := NewInput()
	src := &fakeSource{events: []KeyEvent{{Hex: 0xA, Down: true}}}
	in.Refresh(src)

	if !in.IsKeyPressed(0xA) {
		t.Errorf("key 0xA should be pressed after refresh")
	}
	if in.IsKeyPressed(0xB) {
		t.Errorf("key 0xB should not be pressed")
	}
}

func TestInputGetAnyKeyPressedReturnsLowest(t *testing.T) {
	in := NewInput()
	in.Refresh(&fakeSource{events: []KeyEvent{
		{Hex: 0x5, Down: true},
		{Hex: 0x2, Down: true},
	}})

	key, ok := in.GetAnyKeyPressed()
	if !ok || key != 0x2 {
		t.Errorf("GetAnyKeyPressed() = (%d, %v), want (2, true)", key, ok)
	}
}

func TestInputFreeEdgeClearedEachRefresh(t *testing.T) {
	in := NewInput()
	in.Refresh(&fakeSource{events: []KeyEvent{{Hex: -1, Free: 99, Down: true}}})
	if !in.IsFreeKeyJustPressed(99) {
		t.Errorf("expected a key-down edge on first refresh")
	}

	in.Refresh(&fakeSource{}) // no new events
	if in.IsFreeKeyJustPressed(99) {
		t.Errorf("edge should not persist past the refresh it occurred in")
	}
	if !in.IsFreeKeyPressed(99) {
		t.Errorf("held state should persist while the key stays down")
	}
}

func TestInputShouldQuit(t *testing.T) {
	in := NewInput()
	in.Refresh(&fakeSource{quit: true})
	if !in.ShouldQuit() {
		t.Errorf("ShouldQuit() should be true after a quit event")
	}
}

func TestInputOutOfRangeKeyIsNotPressed(t *testing.T) {
	in := NewInput()
	if in.IsKeyPressed(16) {
		t.Errorf("out-of-range key index should report not pressed")
	}
}
