package tesseract4d

// Settings are the numeric knobs of the per-frame update.
type Settings struct {
	Speed       Real
	ZWStep      Real
	LightSource Real
	ProjectionW Real
}

// DefaultSettings returns the constants of the live animation.
func DefaultSettings() Settings {
	return Settings{
		Speed:       Speed,
		ZWStep:      ZWStep,
		LightSource: LightSource,
		ProjectionW: LiveProjectionW,
	}
}

// State is everything one animation needs between frames. Vertices4D is
// rotated in place each frame; Edges never change.
type State struct {
	Name       string
	Vertices4D []Point4
	Vertices3D []Point3
	Edges      []Edge
	Frame      *FrameBuffer
	Settings   Settings
}

// NewState copies the wireframe's vertices and assembles the initial frame.
func NewState(w *Wireframe, s Settings) *State {
	verts := make([]Point4, len(w.Vertices))
	copy(verts, w.Vertices)
	st := &State{
		Name:       w.Name,
		Vertices4D: verts,
		Edges:      w.Edges,
		Frame:      NewFrameBuffer(len(w.Edges)),
		Settings:   s,
	}
	st.Vertices3D = Project4Dto3D(st.Vertices4D, st.projection())
	st.Frame.Assemble(st.Vertices3D, st.Edges)
	return st
}

func (s *State) projection() Mat4 {
	return Project(s.Settings.LightSource, s.Settings.ProjectionW)
}

// Update runs one frame: fresh rotation from p, rotate in place, project,
// rewrite the frame buffer.
func (s *State) Update(p Pointer) *FrameBuffer {
	R := Angles(p, s.Settings.Speed, s.Settings.ZWStep).Matrix()
	ApplyTransform(s.Vertices4D, R)
	s.Vertices3D = Project4Dto3DInto(s.Vertices3D, s.Vertices4D, s.projection())
	s.Frame.Assemble(s.Vertices3D, s.Edges)
	return s.Frame
}
