package input

// Frame is the input seen by one frame of widgets.
type Frame struct {
	MouseX, MouseY float32
	// MouseDown is the primary button state.
	MouseDown bool
	// MousePressed and MouseReleased are edges since the previous frame.
	MousePressed  bool
	MouseReleased bool
	ScrollY       float32
	// Typed holds the text entered since the previous frame.
	Typed []rune
	// Pressed holds keys that went down since the previous frame.
	Pressed map[Key]bool
	Mods    Mod
}

// KeyPressed reports whether k went down this frame.
func (f *Frame) KeyPressed(k Key) bool { return f.Pressed[k] }

// State accumulates events between frames.
type State struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	mouseDown      bool
	mods           Mod

	pressed       map[Key]bool
	typed         []rune
	mousePressed  bool
	mouseReleased bool
	scrollY       float64
}

func NewState() *State {
	return &State{keys: map[Key]bool{}, pressed: map[Key]bool{}}
}

func (s *State) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && (!s.keys[e.Key] || e.Repeat) {
			s.pressed[e.Key] = true
		}
		s.keys[e.Key] = e.Down
		s.mods = e.Mods
	case EventChar:
		s.typed = append(s.typed, e.Rune)
	case EventMouseMove:
		s.mouseX, s.mouseY = e.X, e.Y
	case EventMouseButton:
		if e.Button != 0 {
			return
		}
		if e.Down && !s.mouseDown {
			s.mousePressed = true
		}
		if !e.Down && s.mouseDown {
			s.mouseReleased = true
		}
		s.mouseDown = e.Down
	case EventScroll:
		s.scrollY += e.Yoff
	}
}

func (s *State) IsKeyDown(k Key) bool      { return s.keys[k] }
func (s *State) Mouse() (float64, float64) { return s.mouseX, s.mouseY }

// Frame snapshots the accumulated input and clears the edge state for the
// next frame.
func (s *State) Frame() Frame {
	f := Frame{
		MouseX:        float32(s.mouseX),
		MouseY:        float32(s.mouseY),
		MouseDown:     s.mouseDown,
		MousePressed:  s.mousePressed,
		MouseReleased: s.mouseReleased,
		ScrollY:       float32(s.scrollY),
		Typed:         s.typed,
		Pressed:       s.pressed,
		Mods:          s.mods,
	}
	s.typed = nil
	s.pressed = map[Key]bool{}
	s.mousePressed, s.mouseReleased = false, false
	s.scrollY = 0
	return f
}
