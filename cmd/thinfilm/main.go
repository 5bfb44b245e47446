package main

import (
	"fmt"
	"os"

	"github.com/mwielgat/thinfilm/internal/thinfilm"
	"github.com/spf13/cobra"
)

var lambdaNm float64

var rootCmd = &cobra.Command{
	Use:   "thinfilm",
	Short: "Coherent transfer-matrix calculator for planar optical layer stacks",
	Long: `thinfilm computes the net reflectance and transmittance of a stack of
planar optical layers with the coherent transfer-matrix method.

Examples:
  thinfilm sweep configs/ar_coating.json    # R/T over the configured wavelength range
  thinfilm layers configs/ar_coating.json   # dump per-layer index and thickness`,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep <config.json>",
	Short: "Sweep wavelengths and print an R/T table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return thinfilm.Run(args[0])
	},
}

var layersCmd = &cobra.Command{
	Use:   "layers <config.json>",
	Short: "Print per-layer refractive index and thickness",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := thinfilm.LoadConfig(args[0])
		if err != nil {
			return err
		}
		stack, err := cfg.BuildStack()
		if err != nil {
			return err
		}
		stack.PrintLayers(lambdaNm * thinfilm.Nm)
		return nil
	},
}

func init() {
	layersCmd.Flags().Float64Var(&lambdaNm, "lambda-nm", 550, "wavelength (nm) at which to evaluate the indices")
	rootCmd.AddCommand(sweepCmd, layersCmd)
}

func main() {
	thinfilm.Debug = os.Getenv("DEBUG") != ""
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
