package thinfilm

import (
	"fmt"
	"math"
	"time"
)

// Run loads a stack description, sweeps the configured wavelength range and
// prints one reflectance/transmittance row per sample.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	stack, err := cfg.BuildStack()
	if err != nil {
		return err
	}
	pol, err := ParsePolarization(cfg.Sweep.Polarization)
	if err != nil {
		return err
	}

	th0 := complex(cfg.Sweep.AngleDeg*math.Pi/180, 0)
	if Debug {
		mid := (cfg.Sweep.LambdaMinNm + cfg.Sweep.LambdaMaxNm) / 2 * Nm
		stack.PrintLayers(mid)
	}

	steps := cfg.Sweep.Steps
	span := cfg.Sweep.LambdaMaxNm - cfg.Sweep.LambdaMinNm
	conditions := 0
	start := time.Now()
	fmt.Printf("# %s-pol, angle %g deg, %d layers\n", pol, cfg.Sweep.AngleDeg, stack.NumLayers())
	fmt.Println("# lambda(nm)\tR\tT")
	for i := 0; i < steps; i++ {
		lamNm := cfg.Sweep.LambdaMinNm
		if steps > 1 {
			lamNm += span * Real(i) / Real(steps-1)
		}
		R, T, rep := stack.CoherentTMM(pol, th0, lamNm*Nm)
		fmt.Printf("%.6g\t%.8g\t%.8g\n", lamNm, R, T)
		conditions += len(rep.Diagnostics)
	}
	DebugLog("Swept %d wavelengths in %s", steps, time.Since(start))
	if conditions > 0 {
		fmt.Printf("# %d diagnostic condition(s) reported during the sweep\n", conditions)
	}
	return nil
}
