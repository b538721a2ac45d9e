// Package config resolves chart options from defaults, an optional YAML
// file, GANTT_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexanderramin/gantt/internal/domain"
)

const (
	EnvPrefix         = "GANTT"
	ProjectConfigFile = ".gantt.yaml"
	GlobalConfigDir   = ".gantt"
	GlobalConfigFile  = "config.yaml"
)

// flagKeys maps option flag names to config keys.
var flagKeys = map[string]string{
	"view-mode":        "view_mode",
	"min-date":         "min_date",
	"max-date":         "max_date",
	"row-height":       "row_height",
	"header-height":    "header_height",
	"column-width":     "column_width",
	"task-min-width":   "task_min_width",
	"enable-drag-drop": "enable_drag_drop",
	"show-sidebar":     "show_sidebar",
	"sidebar-width":    "sidebar_width",
	"sidebar-title":    "sidebar_title",
	"locale":           "locale",
	"date-format":      "date_format",
	"time-format":      "time_format",
	"theme":            "theme",
	"viewport-width":   "viewport_width",
	"viewport-height":  "viewport_height",
	"timezone":         "timezone",
}

// RegisterFlags adds one flag per option to fs. Flag defaults mirror
// domain.DefaultOptions so an unset flag never masks a config file value.
func RegisterFlags(fs *pflag.FlagSet) {
	d := domain.DefaultOptions()
	fs.String("view-mode", string(d.ViewMode), "time granularity: hour, day, week or month")
	fs.String("min-date", "", "pin the start of the date range (YYYY-MM-DD or RFC3339)")
	fs.String("max-date", "", "pin the end of the date range (YYYY-MM-DD or RFC3339)")
	fs.Float64("row-height", d.RowHeight, "row height in pixels")
	fs.Float64("header-height", d.HeaderHeight, "height of one header row in pixels")
	fs.Float64("column-width", d.ColumnWidth, "column width in pixels")
	fs.Float64("task-min-width", d.TaskMinWidth, "minimum task bar width in pixels")
	fs.Bool("enable-drag-drop", d.EnableDragDrop, "allow dragging task bars")
	fs.Bool("show-sidebar", d.ShowSidebar, "render the task name sidebar")
	fs.Float64("sidebar-width", d.SidebarWidth, "sidebar width in pixels")
	fs.String("sidebar-title", d.SidebarTitle, "sidebar header text")
	fs.String("locale", d.Locale, "locale for month and weekday names")
	fs.String("date-format", d.DateFormat, "date format token string")
	fs.String("time-format", d.TimeFormat, "time format token string")
	fs.String("theme", d.Theme, "color theme: default or dark")
	fs.Float64("viewport-width", d.ViewportWidth, "viewport width in pixels")
	fs.Float64("viewport-height", d.ViewportHeight, "viewport height in pixels")
	fs.String("timezone", d.Timezone, "calendar timezone (Local, UTC or an IANA name)")
}

func setDefaults(v *viper.Viper) {
	d := domain.DefaultOptions()
	v.SetDefault("view_mode", string(d.ViewMode))
	v.SetDefault("row_height", d.RowHeight)
	v.SetDefault("header_height", d.HeaderHeight)
	v.SetDefault("column_width", d.ColumnWidth)
	v.SetDefault("task_min_width", d.TaskMinWidth)
	v.SetDefault("enable_drag_drop", d.EnableDragDrop)
	v.SetDefault("show_sidebar", d.ShowSidebar)
	v.SetDefault("sidebar_width", d.SidebarWidth)
	v.SetDefault("sidebar_title", d.SidebarTitle)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("date_format", d.DateFormat)
	v.SetDefault("time_format", d.TimeFormat)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("viewport_width", d.ViewportWidth)
	v.SetDefault("viewport_height", d.ViewportHeight)
	v.SetDefault("timezone", d.Timezone)
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// Keys without a default are invisible to AutomaticEnv during Unmarshal.
	_ = v.BindEnv("min_date")
	_ = v.BindEnv("max_date")
	return v
}

// Loader resolves options. The zero value is not usable; call NewLoader.
type Loader struct {
	v          *viper.Viper
	configFile string
	workDir    string
	homeDir    string
}

// NewLoader returns a Loader that searches the working directory and the
// user's home directory for config files.
func NewLoader() *Loader {
	wd, _ := os.Getwd()
	home, _ := os.UserHomeDir()
	return &Loader{v: newViperInstance(), workDir: wd, homeDir: home}
}

// WithSearchDirs overrides the directories searched for the project and
// global config files.
func (l *Loader) WithSearchDirs(workDir, homeDir string) *Loader {
	l.workDir = workDir
	l.homeDir = homeDir
	return l
}

// BindFlags binds every option flag registered on fs. Flags not present on
// fs are skipped.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// ConfigFile reports the file read by the last Load, or "".
func (l *Loader) ConfigFile() string { return l.configFile }

// Load resolves options. An explicit path must exist; otherwise the first
// of ./.gantt.yaml and ~/.gantt/config.yaml that exists is read, and a
// missing file is not an error.
func (l *Loader) Load(ctx context.Context, explicitPath string) (domain.Options, error) {
	path, err := l.resolveConfigPath(explicitPath)
	if err != nil {
		return domain.Options{}, err
	}
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return domain.Options{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		l.configFile = path
	}

	// Zoneless dates are read in the configured timezone, so it is
	// resolved before the rest of the options.
	loc := domain.Options{Timezone: l.v.GetString("timezone")}.Location()

	var opts domain.Options
	if err := l.v.Unmarshal(&opts, decoderOption(loc)); err != nil {
		return domain.Options{}, fmt.Errorf("decoding options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return domain.Options{}, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("config_file", l.configFile).
		Str("view_mode", string(opts.ViewMode)).
		Float64("column_width", opts.ColumnWidth).
		Str("timezone", opts.Timezone).
		Msg("configuration loaded")

	return opts, nil
}

func (l *Loader) resolveConfigPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicitPath, nil
	}
	var candidates []string
	if l.workDir != "" {
		candidates = append(candidates, filepath.Join(l.workDir, ProjectConfigFile))
	}
	if l.homeDir != "" {
		candidates = append(candidates, filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile))
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}
	return "", nil
}

// Load is shorthand for NewLoader().BindFlags(fs) followed by Load. fs may
// be nil.
func Load(ctx context.Context, explicitPath string, fs *pflag.FlagSet) (domain.Options, error) {
	l := NewLoader()
	if fs != nil {
		if err := l.BindFlags(fs); err != nil {
			return domain.Options{}, err
		}
	}
	return l.Load(ctx, explicitPath)
}

func isConfigNotFoundError(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func decoderOption(loc *time.Location) viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			dateHookFunc(loc),
		),
	)
}

var timeType = reflect.TypeOf(time.Time{})

// dateHookFunc decodes min_date and max_date. Strings use the accepted date
// layouts. YAML dates arrive as UTC midnight and are re-read as midnight in
// loc. An empty string leaves the date unset.
func dateHookFunc(loc *time.Location) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != timeType && to != reflect.PointerTo(timeType) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			if v == "" {
				return nil, nil
			}
			t, err := domain.ParseDate(v, loc)
			if err != nil {
				return nil, err
			}
			return t.In(loc), nil
		case time.Time:
			if v.Location() == time.UTC && loc != time.UTC && v.Equal(v.Truncate(24*time.Hour)) {
				return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, loc), nil
			}
			return v, nil
		}
		return data, nil
	}
}
