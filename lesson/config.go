package lesson

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/mobile/asset"
	"gopkg.in/yaml.v3"
)

// ConfigAsset is the asset consulted by the lesson apps for scene
// overrides.
const ConfigAsset = "lesson.yaml"

// Config holds the scene parameters of a Triangle. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	ClearColor [4]float32 `yaml:"clear_color"`

	// Camera placement for the view matrix.
	Eye    [3]float32 `yaml:"eye"`
	Target [3]float32 `yaml:"target"`
	Up     [3]float32 `yaml:"up"`

	// Near and far clip distances of the projection.
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	PeriodMillis uint64 `yaml:"period_ms"`
	ShowFPS      bool   `yaml:"show_fps"`

	// Shader source overrides. Empty means the built-in shader.
	VertexShader   string `yaml:"vertex_shader,omitempty"`
	FragmentShader string `yaml:"fragment_shader,omitempty"`
}

// DefaultConfig returns the scene of the first lesson.
func DefaultConfig() Config {
	return Config{
		ClearColor:   [4]float32{0.5, 0.5, 0.5, 0.5},
		Eye:          [3]float32{0, 0, 1.5},
		Target:       [3]float32{0, 0, -5},
		Up:           [3]float32{0, 1, 0},
		Near:         1,
		Far:          10,
		PeriodMillis: RotationPeriod,
	}
}

// Validate reports the first parameter that would make the scene
// unrenderable.
func (c Config) Validate() error {
	if c.Near <= 0 {
		return fmt.Errorf("near plane must be positive, got %v", c.Near)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("far plane %v must lie beyond near plane %v", c.Far, c.Near)
	}
	if c.PeriodMillis == 0 {
		return errors.New("rotation period must be non-zero")
	}
	if c.Eye == c.Target {
		return errors.New("eye and target coincide")
	}
	if c.Up == ([3]float32{}) {
		return errors.New("up vector is zero")
	}
	if parallel(sub3(c.Target, c.Eye), c.Up) {
		return errors.New("up vector is parallel to the view direction")
	}
	return nil
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// parallel reports whether a and b point along the same line, within
// float32 precision relative to their lengths.
func parallel(a, b [3]float32) bool {
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	cross := x*x + y*y + z*z
	scale := (a[0]*a[0] + a[1]*a[1] + a[2]*a[2]) * (b[0]*b[0] + b[1]*b[1] + b[2]*b[2])
	return cross <= scale*1e-12
}

func (c Config) vertexSource() string {
	if c.VertexShader != "" {
		return c.VertexShader
	}
	return vertexShader
}

func (c Config) fragmentSource() string {
	if c.FragmentShader != "" {
		return c.FragmentShader
	}
	return fragmentShader
}

// LoadConfig decodes YAML overrides from r on top of DefaultConfig. An
// empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return DefaultConfig(), fmt.Errorf("decoding lesson config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid lesson config: %w", err)
	}
	return cfg, nil
}

// LoadConfigAsset loads the named asset with LoadConfig. A missing asset
// is not an error; the defaults are returned. Any other failure is returned
// along with the defaults.
func LoadConfigAsset(name string) (Config, error) {
	f, err := asset.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Debug("no lesson config asset, using defaults", "asset", name)
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("opening lesson config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}
