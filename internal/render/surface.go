package render

import (
	"bytes"
	"io"
)

// Surface receives every redrawn scene.
type Surface interface {
	Draw(s *Scene) error
}

// Recorder keeps the scenes it is given. It is the headless surface used by
// tests and by commands that post-process the final frame.
type Recorder struct {
	Frames []*Scene
}

func (r *Recorder) Draw(s *Scene) error {
	r.Frames = append(r.Frames, s)
	return nil
}

// Last returns the most recent scene, or nil before the first draw.
func (r *Recorder) Last() *Scene {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// SVGSurface renders each scene to an SVG document and keeps the latest.
type SVGSurface struct {
	buf bytes.Buffer
}

func (s *SVGSurface) Draw(scene *Scene) error {
	s.buf.Reset()
	return WriteSVG(&s.buf, scene)
}

// Bytes returns the latest document.
func (s *SVGSurface) Bytes() []byte { return s.buf.Bytes() }

// WriteTo copies the latest document to w.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.buf.Bytes())
	return int64(n), err
}

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*SVGSurface)(nil)
)
