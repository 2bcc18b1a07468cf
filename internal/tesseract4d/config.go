package tesseract4d

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// PointerCfg scripts the pointer for headless hosts.
type PointerCfg struct {
	X     Real `json:"x" mapstructure:"x"`
	Y     Real `json:"y" mapstructure:"y"`
	Sweep bool `json:"sweep" mapstructure:"sweep"`
}

// CameraCfg describes the 3D->2D camera used by every host.
type CameraCfg struct {
	Fov      Real `json:"fov" mapstructure:"fov"`
	Near     Real `json:"near" mapstructure:"near"`
	Far      Real `json:"far" mapstructure:"far"`
	Distance Real `json:"distance" mapstructure:"distance"`
}

type Config struct {
	Polytope    string     `json:"polytope" mapstructure:"polytope"`
	Dimension   int        `json:"dimension" mapstructure:"dimension"`
	Speed       Real       `json:"speed" mapstructure:"speed"`
	ZWStep      Real       `json:"zwStep" mapstructure:"zwStep"`
	LightSource Real       `json:"lightSource" mapstructure:"lightSource"`
	ProjectionW Real       `json:"projectionW" mapstructure:"projectionW"`
	Scale       Real       `json:"scale" mapstructure:"scale"`
	Host        string     `json:"host" mapstructure:"host"`
	Frames      int        `json:"frames" mapstructure:"frames"`
	FPS         int        `json:"fps" mapstructure:"fps"`
	Width       int        `json:"width" mapstructure:"width"`
	Height      int        `json:"height" mapstructure:"height"`
	GIFDelay    int        `json:"gifDelay" mapstructure:"gifDelay"`
	Out         string     `json:"out" mapstructure:"out"`
	Pointer     PointerCfg `json:"pointer" mapstructure:"pointer"`
	Camera      CameraCfg  `json:"camera" mapstructure:"camera"`
	LogLevel    string     `json:"logLevel" mapstructure:"logLevel"`
	LogFile     string     `json:"logFile" mapstructure:"logFile"`
	Debug       bool       `json:"debug" mapstructure:"debug"`
}

// SetDefaults registers every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("polytope", Tesseract)
	v.SetDefault("dimension", Dim)
	v.SetDefault("speed", Speed)
	v.SetDefault("zwStep", ZWStep)
	v.SetDefault("lightSource", LightSource)
	v.SetDefault("projectionW", LiveProjectionW)
	v.SetDefault("scale", 1.0)
	v.SetDefault("host", "term")
	v.SetDefault("frames", 240)
	v.SetDefault("fps", 60)
	v.SetDefault("width", 400)
	v.SetDefault("height", 400)
	v.SetDefault("gifDelay", 2)
	v.SetDefault("out", "")

	v.SetDefault("pointer.x", 0.25)
	v.SetDefault("pointer.y", 0.1)
	v.SetDefault("pointer.sweep", false)

	v.SetDefault("camera.fov", CameraFovDeg)
	v.SetDefault("camera.near", CameraNear)
	v.SetDefault("camera.far", CameraFar)
	v.SetDefault("camera.distance", CameraDistance)

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("debug", false)
}

// Flags declares the command-line switches; names match config keys.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "JSON config file")
	fs.String("host", "term", "render host: term, window, gif, png, raw, wkt, info")
	fs.String("polytope", Tesseract, "polytope: "+strings.Join(Polytopes(), ", "))
	fs.Int("dimension", Dim, "hypercube dimension for the info host")
	fs.Int("frames", 240, "frames to record (headless hosts)")
	fs.Int("fps", 60, "frames per second (term host)")
	fs.String("out", "", "output path or png prefix (default tesseract.<host>)")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.String("log-file", "", "log file (defaults to stderr, silenced for term)")
}

var flagKeys = map[string]string{
	"host":      "host",
	"polytope":  "polytope",
	"dimension": "dimension",
	"frames":    "frames",
	"fps":       "fps",
	"out":       "out",
	"log-level": "logLevel",
	"log-file":  "logFile",
}

// LoadConfig resolves defaults < JSON file < TESSERACT_* env < flags.
// path may be empty; fs may be nil.
func LoadConfig(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("TESSERACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	DebugLog("Config: %+v", cfg)
	return &cfg, nil
}

// Validate rejects values no host can work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Frames <= 0 {
		errs = append(errs, fmt.Errorf("frames must be > 0, got %d", c.Frames))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be > 0, got %d", c.FPS))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("width/height must be > 0, got %dx%d", c.Width, c.Height))
	}
	if c.GIFDelay < 0 {
		errs = append(errs, fmt.Errorf("gifDelay must be >= 0, got %d", c.GIFDelay))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera needs 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Settings extracts the update knobs.
func (c *Config) Settings() Settings {
	return Settings{
		Speed:       c.Speed,
		ZWStep:      c.ZWStep,
		LightSource: c.LightSource,
		ProjectionW: c.ProjectionW,
	}
}

// ViewCamera builds the camera; aspect is left to the surface.
func (c *Config) ViewCamera() Camera {
	return Camera{FovDeg: c.Camera.Fov, Near: c.Camera.Near, Far: c.Camera.Far, Distance: c.Camera.Distance}
}

// Wireframe builds the configured polytope.
func (c *Config) Wireframe() (*Wireframe, error) {
	return NewWireframe(c.Polytope, c.Scale)
}
