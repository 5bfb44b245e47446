package thinfilm

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// MaterialCfg describes one index model. Model selects the fields used:
// "constant" (n, k), "cauchy" (a, b, c with b in um^2 and c in um^4) or
// "table" (lambdaNm, nTable, kTable).
type MaterialCfg struct {
	Model string `json:"model,omitempty"` // defaults to "constant"
	N     Real   `json:"n,omitempty"`
	K     Real   `json:"k,omitempty"`

	A Real `json:"a,omitempty"`
	B Real `json:"b,omitempty"`
	C Real `json:"c,omitempty"`

	LambdaNm []Real `json:"lambdaNm,omitempty"`
	NTable   []Real `json:"nTable,omitempty"`
	KTable   []Real `json:"kTable,omitempty"`
}

// Build validates and constructs the provider for this material.
func (m MaterialCfg) Build() (RefractiveIndexProvider, error) {
	switch strings.ToLower(m.Model) {
	case "", "constant":
		if m.N <= 0 {
			return nil, fmt.Errorf("constant material needs n > 0, got %g", m.N)
		}
		return Constant(m.N, m.K), nil
	case "cauchy":
		if m.A <= 0 {
			return nil, fmt.Errorf("cauchy material needs coefficient a > 0, got %g", m.A)
		}
		return CauchyFormula{A: m.A, B: m.B, C: m.C}, nil
	case "table":
		lam := make([]Real, len(m.LambdaNm))
		for i, l := range m.LambdaNm {
			lam[i] = l * Nm
		}
		return NewTableIndex(lam, m.NTable, m.KTable)
	}
	return nil, fmt.Errorf("unknown material model %q", m.Model)
}

// FilmCfg is one interior layer: a material reference and a thickness.
type FilmCfg struct {
	Material    string `json:"material"`
	ThicknessNm Real   `json:"thicknessNm"`
}

type SweepCfg struct {
	LambdaMinNm  Real   `json:"lambdaMinNm"`
	LambdaMaxNm  Real   `json:"lambdaMaxNm"`
	Steps        int    `json:"steps,omitempty"`
	AngleDeg     Real   `json:"angleDeg,omitempty"`
	Polarization string `json:"polarization,omitempty"` // "s" or "p"
}

type Config struct {
	Materials map[string]MaterialCfg `json:"materials"`
	Top       string                 `json:"top"`
	Bottom    string                 `json:"bottom"`
	Films     []FilmCfg              `json:"films,omitempty"`
	Sweep     SweepCfg               `json:"sweep"`
}

func (c *Config) material(name string) (RefractiveIndexProvider, error) {
	mc, ok := c.Materials[name]
	if !ok {
		return nil, fmt.Errorf("material %q is not defined", name)
	}
	return mc.Build()
}

// BuildStack assembles the layer stack described by the config: the two
// boundary media first, then every film in deposition order.
func (c *Config) BuildStack() (*Stack, error) {
	top, err := c.material(c.Top)
	if err != nil {
		return nil, fmt.Errorf("top medium: %w", err)
	}
	bottom, err := c.material(c.Bottom)
	if err != nil {
		return nil, fmt.Errorf("bottom medium: %w", err)
	}
	stack := NewStack(top, bottom)
	for i, f := range c.Films {
		p, err := c.material(f.Material)
		if err != nil {
			return nil, fmt.Errorf("film %d: %w", i, err)
		}
		if !isFinite(f.ThicknessNm) || f.ThicknessNm < 0 {
			return nil, fmt.Errorf("film %d: thickness must be finite and >= 0, got %g", i, f.ThicknessNm)
		}
		stack.InsertLayer(p, f.ThicknessNm*Nm)
	}
	return stack, nil
}

// ParsePolarization maps "s"/"p" onto the enum.
func ParsePolarization(s string) (Polarization, error) {
	switch strings.ToLower(s) {
	case "s":
		return PolS, nil
	case "p":
		return PolP, nil
	}
	return PolS, fmt.Errorf(`polarization must be "s" or "p", got %q`, s)
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Top == "" || cfg.Bottom == "" {
		return nil, fmt.Errorf("config needs top and bottom media")
	}
	if cfg.Sweep.LambdaMinNm <= 0 {
		return nil, fmt.Errorf("sweep needs lambdaMinNm > 0, got %g", cfg.Sweep.LambdaMinNm)
	}
	if cfg.Sweep.LambdaMaxNm < cfg.Sweep.LambdaMinNm {
		return nil, fmt.Errorf("sweep range is inverted: %g > %g nm", cfg.Sweep.LambdaMinNm, cfg.Sweep.LambdaMaxNm)
	}
	if cfg.Sweep.AngleDeg < 0 || cfg.Sweep.AngleDeg >= 90 {
		return nil, fmt.Errorf("angleDeg must be in [0, 90), got %g", cfg.Sweep.AngleDeg)
	}
	if cfg.Sweep.Steps <= 0 {
		cfg.Sweep.Steps = SweepSteps
	}
	if cfg.Sweep.Polarization == "" {
		cfg.Sweep.Polarization = SweepPol
	}
	if _, err := ParsePolarization(cfg.Sweep.Polarization); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: %d materials, %d films, sweep %g-%g nm @ %g deg",
		path, len(cfg.Materials), len(cfg.Films), cfg.Sweep.LambdaMinNm, cfg.Sweep.LambdaMaxNm, cfg.Sweep.AngleDeg)
	return &cfg, nil
}
