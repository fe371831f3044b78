package instrument

// Modulation destination names shared across variants. The per-variant
// tables splice their own parameter slots between PITCH and CUTOFF.
const (
	destOff     = "OFF"
	destVolume  = "VOLUME"
	destPitch   = "PITCH"
	destCutoff  = "CUTOFF"
	destRes     = "RES"
	destAmp     = "AMP"
	destPan     = "PAN"
	destModAmt  = "MOD AMT"
	destModRate = "MOD RATE"
	destModBoth = "MOD BOTH"
	destModBInv = "MOD BINV"
)
