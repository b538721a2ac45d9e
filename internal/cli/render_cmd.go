package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/gantt"
	"github.com/alexanderramin/gantt/internal/interact"
	"github.com/alexanderramin/gantt/internal/render"
)

// Text output geometry.
const (
	textCellWidth  = 10
	textLabelWidth = 24
)

type renderFlags struct {
	output      string
	format      string
	view        string
	zoom        float64
	collapse    []string
	collapseAll bool
	scrollTo    string
	align       string
	width       int
}

func newRenderCmd(app *App) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a chart file as SVG or terminal text",
		Long: `Render loads a chart file, applies the requested view changes and writes
the resulting scene. SVG is written to --output or stdout; text output is
sized to the terminal unless --width is given.`,
		Example: `  gantt render plan.yaml -o plan.svg
  gantt render plan.json --format text --view week --collapse g2
  gantt render plan.yaml --scroll-to 2024-03-01 --align start`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&f.format, "format", "svg", "output format: svg or text")
	cmd.Flags().StringVar(&f.view, "view", "", "view mode override: hour, day, week or month")
	cmd.Flags().Float64Var(&f.zoom, "zoom", 0, "column width in pixels (clamped to 10-120)")
	cmd.Flags().StringSliceVar(&f.collapse, "collapse", nil, "group ids to collapse")
	cmd.Flags().BoolVar(&f.collapseAll, "collapse-all", false, "collapse every group")
	cmd.Flags().StringVar(&f.scrollTo, "scroll-to", "", "scroll to a date or \"today\", extending the range when needed")
	cmd.Flags().StringVar(&f.align, "align", string(domain.AlignCenter), "scroll alignment: start, center or end")
	cmd.Flags().IntVar(&f.width, "width", 0, "text output width in characters")

	return cmd
}

func runRender(cmd *cobra.Command, app *App, path string, f renderFlags) (err error) {
	var surface render.Surface
	svg := &render.SVGSurface{}
	rec := &render.Recorder{}
	switch f.format {
	case "svg":
		surface = svg
	case "text":
		surface = rec
	default:
		return fmt.Errorf("%w: format %q (must be svg or text)", domain.ErrInvalidArgument, f.format)
	}

	c, err := app.openChart(path, surface, app.Options)
	if err != nil {
		return err
	}
	defer c.Destroy()

	scrollLeft, err := applyViewFlags(c, f)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, f.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	if f.format == "svg" {
		_, err = svg.WriteTo(out)
		return err
	}

	width := f.width
	if width <= 0 {
		if tw, _, ok := app.termSize(); ok {
			width = tw
		}
	}
	return render.WriteText(out, c.Scene(), textOptions(c, width, scrollLeft))
}

// applyViewFlags runs the view operations requested on the command line
// and returns the resulting horizontal scroll offset.
func applyViewFlags(c *gantt.Chart, f renderFlags) (float64, error) {
	if f.view != "" {
		mode, err := domain.ParseViewMode(f.view)
		if err != nil {
			return 0, err
		}
		if err := c.SetViewMode(mode); err != nil {
			return 0, err
		}
	}
	if f.zoom > 0 {
		c.SetZoom(f.zoom)
	}
	if f.collapseAll {
		c.CollapseAll()
	}
	for _, id := range f.collapse {
		if !c.IsCollapsed(id) && !c.ToggleGroup(id) {
			return 0, fmt.Errorf("%w: group %q", domain.ErrNotFound, id)
		}
	}

	if f.scrollTo == "" {
		return 0, nil
	}
	opts := interact.DefaultScrollOptions()
	switch domain.Align(f.align) {
	case domain.AlignStart, domain.AlignCenter, domain.AlignEnd:
		opts.Align = domain.Align(f.align)
	default:
		return 0, fmt.Errorf("%w: align %q (must be start, center or end)", domain.ErrInvalidArgument, f.align)
	}
	if strings.EqualFold(f.scrollTo, "today") {
		return c.ScrollToToday(opts), nil
	}
	date, err := domain.ParseDate(f.scrollTo, c.Options().Location())
	if err != nil {
		return 0, err
	}
	return c.ScrollToDate(date, opts), nil
}

// textOptions sizes the character grid: width is the total line width,
// 0 draws the whole chart.
func textOptions(c *gantt.Chart, width int, scrollLeft float64) render.TextOptions {
	o := render.TextOptions{CellWidth: textCellWidth, OffsetX: scrollLeft}
	if c.Options().ShowSidebar {
		o.LabelWidth = textLabelWidth
	}
	if width > 0 {
		o.Width = max(width-chartTextInset(o), 1)
	}
	return o
}

// chartTextInset is the number of characters taken by the label column and
// its separator.
func chartTextInset(o render.TextOptions) int {
	if o.LabelWidth <= 0 {
		return 0
	}
	return o.LabelWidth + 2
}

// openOutput returns stdout for "" and "-", else a new file. The closer
// reports the file's close error.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, f.Close, nil
}
