package cli

import (
	"fmt"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/gantt"
	"github.com/alexanderramin/gantt/internal/importer"
	"github.com/alexanderramin/gantt/internal/render"
)

// openChart loads a chart file onto a new chart drawing to surface.
// Validation warnings are logged, not returned.
func (app *App) openChart(path string, surface render.Surface, opts domain.Options) (*gantt.Chart, error) {
	log := app.Logger.With().Str("file", path).Logger()

	res, warnings, err := importer.LoadFile(path, opts.Location())
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warn().Err(w).Msg("chart file warning")
	}

	options := []gantt.Option{gantt.WithLogger(app.Logger)}
	if app.Clock != nil {
		options = append(options, gantt.WithClock(app.Clock))
	}
	c, err := gantt.New(surface, opts, options...)
	if err != nil {
		return nil, err
	}
	if err := res.Apply(c); err != nil {
		c.Destroy()
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	log.Debug().
		Int("tasks", len(res.Tasks)).
		Int("groups", len(res.Groups)).
		Str("view_mode", string(c.ViewMode())).
		Msg("chart loaded")
	return c, nil
}
