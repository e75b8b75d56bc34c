// Package pipeline loads and evaluates the fitted win-probability model.
//
// The artifact is a logistic regression over one-hot encoded categorical
// columns and standard-scaled numeric columns, serialized as YAML (JSON is
// accepted too). A Pipeline is immutable once loaded and safe for
// concurrent use.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cricpredict/winprob-api/internal/models"
)

var (
	// ErrLabelOrder means the artifact's classes are not [0, 1]. Index 1 of
	// every probability pair must be the batting side's win.
	ErrLabelOrder = errors.New("pipeline: classes must be [0, 1]")
	// ErrNonFinite is returned for NaN or infinite features or coefficients.
	ErrNonFinite = errors.New("pipeline: non-finite value")
)

// numericTerm is a standard-scaled numeric coefficient.
type numericTerm struct {
	coef  float64
	mean  float64
	scale float64
}

// Pipeline is a loaded model artifact.
type Pipeline struct {
	name      string
	version   string
	intercept float64

	// column -> category -> coefficient; unknown categories contribute 0
	categorical map[string]map[string]float64
	numeric     map[string]numericTerm
}

// PredictProba returns (P(batting side loses), P(batting side wins)).
func (p *Pipeline) PredictProba(ctx context.Context, rec models.FeatureRecord) ([2]float64, error) {
	if err := ctx.Err(); err != nil {
		return [2]float64{}, err
	}

	z := p.intercept

	// Fixed column order keeps the float sum reproducible across calls
	for _, col := range models.CategoricalColumns {
		coefs, ok := p.categorical[col]
		if !ok {
			continue
		}
		val, ok := rec.Categorical(col)
		if !ok {
			return [2]float64{}, fmt.Errorf("pipeline: unknown categorical column %q", col)
		}
		z += coefs[val]
	}

	for _, col := range models.NumericColumns {
		term, ok := p.numeric[col]
		if !ok {
			continue
		}
		x, ok := rec.Numeric(col)
		if !ok {
			return [2]float64{}, fmt.Errorf("pipeline: unknown numeric column %q", col)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return [2]float64{}, fmt.Errorf("%w: feature %s=%v", ErrNonFinite, col, x)
		}
		z += term.coef * (x - term.mean) / term.scale
	}

	if math.IsNaN(z) || math.IsInf(z, 0) {
		return [2]float64{}, fmt.Errorf("%w: decision value %v", ErrNonFinite, z)
	}

	win := sigmoid(z)
	return [2]float64{1 - win, win}, nil
}

// Info describes the artifact for logging and the /model endpoint.
func (p *Pipeline) Info() models.ModelInfo {
	features := make([]string, 0, len(p.categorical)+len(p.numeric))
	for col := range p.categorical {
		features = append(features, col)
	}
	sort.Strings(features)
	numeric := make([]string, 0, len(p.numeric))
	for col := range p.numeric {
		numeric = append(numeric, col)
	}
	sort.Strings(numeric)

	return models.ModelInfo{
		Name:     p.name,
		Version:  p.version,
		Classes:  []int{0, 1},
		Features: append(features, numeric...),
	}
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
