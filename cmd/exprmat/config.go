package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/exprmat/matrix"
)

// Scenario kinds.
const (
	KindSum        = "sum"        // fills[0] + fills[1] + ...
	KindAxpy       = "axpy"       // s0*A + B - C + s1*D
	KindAccumulate = "accumulate" // A += B
	KindMatMulAdd  = "matmul-add" // A(rows×inner) @ B(inner×cols) + C
)

// Config holds the scenario file contents.
type Config struct {
	Workers   int        `yaml:"workers"`
	Memo      bool       `yaml:"memo"`
	Verbose   bool       `yaml:"verbose"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one expression to build and time.
type Scenario struct {
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind"`
	DType   string    `yaml:"dtype"`
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	Inner   int       `yaml:"inner"`   // matmul-add only
	Fills   []Value   `yaml:"fills"`   // one uniform value per operand
	Scalars []Value   `yaml:"scalars"` // axpy only
	Initial [][]Value `yaml:"initial"` // explicit contents of the first operand
	Print   bool      `yaml:"print"`
}

// Value is a YAML number or a [re, im] pair.
type Value complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Value(complex(f, 0))
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := node.Decode(&parts); err != nil {
			return err
		}
		if len(parts) != 2 {
			return fmt.Errorf("line %d: complex value needs [re, im], got %d numbers", node.Line, len(parts))
		}
		*v = Value(complex(parts[0], parts[1]))
		return nil
	default:
		return fmt.Errorf("line %d: expected a number or [re, im]", node.Line)
	}
}

// DefaultConfig reproduces the five classic expression-template demos.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		Scenarios: []Scenario{
			{
				Name: "add four int matrices", Kind: KindSum, DType: "int",
				Rows: 1000, Cols: 1000, Fills: []Value{4, 1, 3, 5},
			},
			{
				Name: "add three complex matrices", Kind: KindSum, DType: "complex128",
				Rows: 500, Cols: 500, Fills: []Value{Value(complex(5, 6)), 1, Value(complex(0, 5))},
			},
			{
				Name: "mixed double expression", Kind: KindAxpy, DType: "float64",
				Rows: 500, Cols: 500, Fills: []Value{4.1, 1.2, 3.6, 5.3}, Scalars: []Value{5.1, 2.1},
			},
			{
				Name: "indexed fill and +=", Kind: KindAccumulate, DType: "int16",
				Rows: 3, Cols: 3, Fills: []Value{0, 40},
				Initial: [][]Value{{1, 2, 3}, {20, 5, 3}, {3, 30, 1}},
				Print:   true,
			},
			{
				Name: "product then add", Kind: KindMatMulAdd, DType: "float64",
				Rows: 100, Inner: 500, Cols: 100, Fills: []Value{4.1, 1.2, 3.6},
			},
		},
	}
}

// LoadConfig reads a scenario file. A file without scenarios keeps the
// default ones.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Config{Workers: 1}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = DefaultConfig().Scenarios
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every scenario.
func (c Config) Validate() error {
	for i, sc := range c.Scenarios {
		if err := sc.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, sc.Name, err)
		}
	}
	return nil
}

// Validate checks that the scenario can be run.
func (s Scenario) Validate() error {
	dt, ok := matrix.ParseDataType(s.DType)
	if !ok || !supportedTypes[dt] {
		return fmt.Errorf("unsupported dtype %q", s.DType)
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("rows and cols must be > 0, got %dx%d", s.Rows, s.Cols)
	}
	if len(s.Initial) > 0 && len(s.Initial) != s.Rows {
		return fmt.Errorf("initial has %d rows, want %d", len(s.Initial), s.Rows)
	}

	switch s.Kind {
	case KindSum:
		if len(s.Fills) < 2 {
			return fmt.Errorf("%s needs at least 2 fills, got %d", s.Kind, len(s.Fills))
		}
	case KindAxpy:
		if len(s.Fills) != 4 || len(s.Scalars) != 2 {
			return fmt.Errorf("%s needs 4 fills and 2 scalars, got %d and %d", s.Kind, len(s.Fills), len(s.Scalars))
		}
	case KindAccumulate:
		if len(s.Fills) != 2 {
			return fmt.Errorf("%s needs 2 fills, got %d", s.Kind, len(s.Fills))
		}
	case KindMatMulAdd:
		if len(s.Fills) != 3 || s.Inner <= 0 {
			return fmt.Errorf("%s needs 3 fills and inner > 0", s.Kind)
		}
		if len(s.Initial) > 0 {
			return fmt.Errorf("%s does not take initial values", s.Kind)
		}
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	return nil
}
