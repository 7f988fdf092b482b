package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-frame input snapshot shared by every scene. Pressed fields
// are single-frame edges; the rest are held state.
type Input struct {
	Confirm bool
	Cancel  bool

	LeftPressed  bool
	RightPressed bool
	UpPressed    bool
	DownPressed  bool
	JumpPressed  bool

	Left  bool
	Right bool
	Up    bool
	Down  bool

	// AnyKeyPressed fires on any keyboard edge; boot and panic screens use it.
	AnyKeyPressed bool

	// Terminal-safe edges for text-entry scenes. Confirm/UpPressed/DownPressed
	// alias letter keys (Z, W, S) for combat and walking; a scene that also
	// consumes Typed must react to these instead, or typing those letters
	// acts on the line.
	Submit      bool
	HistoryUp   bool
	HistoryDown bool

	// Typed holds this frame's typed characters for the terminal scenes.
	Typed []rune
	// Backspace repeats while held so erasing a long line isn't a key mash.
	Backspace bool
	Paste     bool

	keys []ebiten.Key
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard into the snapshot.
func (i *Input) Update() {
	i.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyZ)
	i.Cancel = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyX)

	i.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	i.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	i.Down = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)

	i.LeftPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyA)
	i.RightPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyD)
	i.UpPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)
	i.DownPressed = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) ||
		inpututil.IsKeyJustPressed(ebiten.KeyS)

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || i.UpPressed

	i.Submit = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	i.HistoryUp = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	i.HistoryDown = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)

	i.keys = inpututil.AppendJustPressedKeys(i.keys[:0])
	i.AnyKeyPressed = len(i.keys) > 0

	i.Typed = ebiten.AppendInputChars(i.Typed[:0])
	i.Backspace = repeatingKey(ebiten.KeyBackspace)

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	i.Paste = ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV)
}

// repeatingKey is true on the press edge and then every few frames while the
// key stays held, mimicking terminal key repeat.
func repeatingKey(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= 25 && (d-25)%4 == 0
}
