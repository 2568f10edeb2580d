package waveoptics

var (
	Debug = false // set to true for verbose debug output
	// Compile time checks to ensure that the element interface is implemented by all block processors
	_ element = (*solidElement)(nil)
	_ element = (*polarizerElement)(nil)
	_ element = (*rotatorElement)(nil)
	_ element = (*splitterElement)(nil)
	_ element = (*mirrorElement)(nil)
	_ element = (*absorberElement)(nil)
	_ element = (*phaseShifterElement)(nil)
	_ element = (*beamSplitterElement)(nil)
	_ element = (*quarterWaveElement)(nil)
	_ element = (*halfWaveElement)(nil)
	_ element = (*prismElement)(nil)
	_ element = (*lensElement)(nil)
	_ element = (*sensorElement)(nil)
	_ element = (*portalElement)(nil)
	_ element = (*scattererElement)(nil)
)
