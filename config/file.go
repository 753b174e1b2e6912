package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/akita/v4/sim"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/streamconv/conv"
)

// ErrBadKernel is returned for kernels that are neither a known name nor a
// K×K matrix of int8 coefficients.
var ErrBadKernel = errors.New("config: invalid kernel")

// File is the YAML pipeline configuration.
type File struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Shift   uint       `yaml:"shift"`
	FreqMHz float64    `yaml:"freq_mhz,omitempty"`
	Kernel  KernelSpec `yaml:"kernel"`
}

// KernelSpec is a kernel given either by name or as a matrix.
type KernelSpec struct {
	Name   string
	Kernel conv.Kernel
}

// UnmarshalYAML accepts a kernel name or a K×K sequence of sequences.
func (k *KernelSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		name := strings.ToLower(strings.TrimSpace(value.Value))
		kernel, ok := conv.NamedKernels[name]
		if !ok {
			return fmt.Errorf("line %d: unknown kernel %q: %w",
				value.Line, value.Value, ErrBadKernel)
		}

		k.Name = name
		k.Kernel = kernel

		return nil
	case yaml.SequenceNode:
		var rows [][]int
		if err := value.Decode(&rows); err != nil {
			return fmt.Errorf("line %d: %v: %w", value.Line, err, ErrBadKernel)
		}

		kernel, err := kernelFromRows(rows)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}

		k.Name = ""
		k.Kernel = kernel

		return nil
	default:
		return fmt.Errorf("line %d: kernel must be a name or a matrix: %w",
			value.Line, ErrBadKernel)
	}
}

// MarshalYAML writes the name when there is one and the matrix otherwise.
func (k KernelSpec) MarshalYAML() (interface{}, error) {
	if k.Name != "" {
		return k.Name, nil
	}

	rows := make([][]int, conv.K)
	for i := range rows {
		rows[i] = make([]int, conv.K)
		for j := range rows[i] {
			rows[i][j] = int(k.Kernel[i][j])
		}
	}

	node := &yaml.Node{}
	if err := node.Encode(rows); err != nil {
		return nil, err
	}

	for _, row := range node.Content {
		row.Style = yaml.FlowStyle
	}

	return node, nil
}

func kernelFromRows(rows [][]int) (conv.Kernel, error) {
	var k conv.Kernel
	if len(rows) != conv.K {
		return k, fmt.Errorf("kernel has %d rows, want %d: %w",
			len(rows), conv.K, ErrBadKernel)
	}

	for i, row := range rows {
		if len(row) != conv.K {
			return k, fmt.Errorf("kernel row %d has %d entries, want %d: %w",
				i, len(row), conv.K, ErrBadKernel)
		}

		for j, c := range row {
			if c < -128 || c > 127 {
				return k, fmt.Errorf("coefficient %d at (%d,%d) overflows int8: %w",
					c, i, j, ErrBadKernel)
			}
			k[i][j] = int8(c)
		}
	}

	return k, nil
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		Width:   16,
		Height:  12,
		FreqMHz: 1000,
		Kernel:  KernelSpec{Name: "edge", Kernel: conv.EdgeKernel},
	}
}

// Parse reads a pipeline configuration. Fields the document leaves out keep
// their default values.
func Parse(data []byte) (*File, error) {
	f := Default()

	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := f.Pipeline(); err != nil {
		return nil, err
	}

	return f, nil
}

// LoadFile reads and parses the pipeline configuration at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Save writes the configuration to path.
func (f *File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Pipeline returns the validated pipeline configuration.
func (f *File) Pipeline() (conv.Config, error) {
	cfg := conv.Config{
		Width:  f.Width,
		Height: f.Height,
		Kernel: f.Kernel.Kernel,
		Shift:  f.Shift,
	}

	if err := cfg.Validate(); err != nil {
		return conv.Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Freq returns the device frequency, 1 GHz when unset.
func (f *File) Freq() sim.Freq {
	if f.FreqMHz <= 0 {
		return 1 * sim.GHz
	}

	return sim.Freq(f.FreqMHz) * sim.MHz
}
