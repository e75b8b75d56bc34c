package pipeline

import (
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cricpredict/winprob-api/internal/models"
)

type artifact struct {
	Name        string                        `yaml:"name"`
	Version     string                        `yaml:"version"`
	Classes     []int                         `yaml:"classes"`
	Intercept   float64                       `yaml:"intercept"`
	Categorical map[string]map[string]float64 `yaml:"categorical"`
	Numeric     map[string]numericSpec        `yaml:"numeric"`
}

type numericSpec struct {
	Coef  float64  `yaml:"coef"`
	Mean  float64  `yaml:"mean"`
	Scale *float64 `yaml:"scale"`
}

// Load reads and validates the artifact at path.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes an artifact document.
func Parse(data []byte) (*Pipeline, error) {
	var a artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if !slices.Equal(a.Classes, []int{0, 1}) {
		return nil, fmt.Errorf("%w, got %v", ErrLabelOrder, a.Classes)
	}
	if !finite(a.Intercept) {
		return nil, fmt.Errorf("%w: intercept", ErrNonFinite)
	}

	p := &Pipeline{
		name:        a.Name,
		version:     a.Version,
		intercept:   a.Intercept,
		categorical: make(map[string]map[string]float64, len(a.Categorical)),
		numeric:     make(map[string]numericTerm, len(a.Numeric)),
	}

	for col, coefs := range a.Categorical {
		if !slices.Contains(models.CategoricalColumns, col) {
			return nil, fmt.Errorf("unknown categorical column %q", col)
		}
		for cat, c := range coefs {
			if !finite(c) {
				return nil, fmt.Errorf("%w: %s[%s]", ErrNonFinite, col, cat)
			}
		}
		p.categorical[col] = coefs
	}

	for _, col := range models.NumericColumns {
		spec, ok := a.Numeric[col]
		if !ok {
			return nil, fmt.Errorf("missing numeric column %q", col)
		}
		scale := 1.0
		if spec.Scale != nil {
			scale = *spec.Scale
		}
		if scale == 0 {
			return nil, fmt.Errorf("numeric column %q has zero scale", col)
		}
		if !finite(spec.Coef) || !finite(spec.Mean) || !finite(scale) {
			return nil, fmt.Errorf("%w: numeric column %s", ErrNonFinite, col)
		}
		p.numeric[col] = numericTerm{coef: spec.Coef, mean: spec.Mean, scale: scale}
	}
	for col := range a.Numeric {
		if !slices.Contains(models.NumericColumns, col) {
			return nil, fmt.Errorf("unknown numeric column %q", col)
		}
	}

	if len(p.categorical) == 0 && allZero(p.numeric) {
		return nil, fmt.Errorf("artifact has no coefficients")
	}

	return p, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func allZero(terms map[string]numericTerm) bool {
	for _, t := range terms {
		if t.coef != 0 {
			return false
		}
	}
	return true
}
