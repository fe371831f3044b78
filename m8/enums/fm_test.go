package enums

import "testing"

func TestFMAlgo(t *testing.T) {
	if !FMAlgo(0).Valid() || !FMAlgo(0x0B).Valid() {
		t.Error("algos 0x00..0x0B should be valid")
	}
	if FMAlgo(0x0C).Valid() {
		t.Error("algo 0x0C should be invalid")
	}
	if got := FMAlgo(0x0B).String(); got != "11[ A+B+C+D ]" {
		t.Errorf("String() = %q", got)
	}
}

func TestFMWave(t *testing.T) {
	if got := len(fmWaveNames); got != 77 {
		t.Fatalf("wave table has %d entries, want 77", got)
	}
	for _, tc := range []struct {
		w    FMWave
		want string
	}{
		{0x00, "SIN"},
		{0x0F, "CLK"},
		{0x10, "W09"},
		{0x4C, "W45"},
	} {
		if got := tc.w.String(); got != tc.want {
			t.Errorf("FMWave(0x%02X) = %q, want %q", int(tc.w), got, tc.want)
		}
	}
	if FMWave(0x4D).Valid() {
		t.Error("wave 0x4D should be invalid")
	}
	if FMWave(-1).Valid() {
		t.Error("negative wave should be invalid")
	}
}

func TestInstrumentKindString(t *testing.T) {
	if got := InstrumentKind_Sampler.String(); got != "SAMPLER(0x02)" {
		t.Errorf("String() = %q", got)
	}
	if got := InstrumentKind(0x42).String(); got != "unknown(0x42)" {
		t.Errorf("String() = %q", got)
	}
}
