package thinfilm

var (
	Debug = false // set to true for verbose output

	// Compile time checks that every index model implements the provider interface
	_ RefractiveIndexProvider = ConstantIndex(0)
	_ RefractiveIndexProvider = CauchyFormula{}
	_ RefractiveIndexProvider = (*TableIndex)(nil)
	_ RefractiveIndexProvider = (IndexFunc)(nil)
)
