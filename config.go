package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Config is the optional run configuration, read from an HCL file:
//
//	inputs = "inputs"
//
//	day "8" {
//	  connections        = 1000
//	  sample_connections = 10
//	}
//
// Attributes inside a day block are free-form puzzle parameters.
type Config struct {
	Inputs string
	Days   map[int]map[string]cty.Value
}

type hclConfigFile struct {
	Inputs *string   `hcl:"inputs,optional"`
	Days   []*hclDay `hcl:"day,block"`
	Remain hcl.Body  `hcl:",remain"`
}

type hclDay struct {
	Number string   `hcl:"number,label"`
	Params hcl.Body `hcl:",remain"`
}

// LoadConfig reads the config at path. A missing file yields an empty
// config and no error.
func LoadConfig(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseConfig(path, src)
}

// ParseConfig parses src as an HCL config. filename is only used in
// diagnostics.
func ParseConfig(filename string, src []byte) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}
	var raw hclConfigFile
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}

	cfg := &Config{Days: make(map[int]map[string]cty.Value)}
	if raw.Inputs != nil {
		cfg.Inputs = *raw.Inputs
	}
	for _, d := range raw.Days {
		n, err := strconv.Atoi(d.Number)
		if err != nil {
			return nil, fmt.Errorf("%s: day label %q is not a number", filename, d.Number)
		}
		attrs, diags := d.Params.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("%s: day %d: %w", filename, n, diags)
		}
		params := make(map[string]cty.Value, len(attrs))
		for name, attr := range attrs {
			v, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("%s: day %d: %s: %w", filename, n, name, diags)
			}
			params[name] = v
		}
		cfg.Days[n] = params
	}
	return cfg, nil
}

// Int returns the named integer parameter for day, or def if it is not set.
func (c *Config) Int(day int, name string, def int) (int, error) {
	if c == nil {
		return def, nil
	}
	v, ok := c.Days[day][name]
	if !ok || v.IsNull() {
		return def, nil
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, fmt.Errorf("day %d: %s: %w", day, name, err)
	}
	return n, nil
}
