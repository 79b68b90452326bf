package profile

import "testing"

func TestMCUForHint(t *testing.T) {
	cases := []struct {
		hint Hint
		want MCU
	}{
		{HintArduinoSAMD, MCUSAMD51},
		{HintArduinoRP2040, MCURP2040},
		{HintArduinoESP32, MCUESP32S2},
	}

	for _, tc := range cases {
		got, ok := MCUForHint(tc.hint)
		if !ok {
			t.Fatalf("expected hint %s to be recognised", tc.hint)
		}
		if got != tc.want {
			t.Fatalf("hint %s: expected %s, got %s", tc.hint, tc.want, got)
		}
	}

	if _, ok := MCUForHint(Hint("ARDUINO_ARCH_AVR")); ok {
		t.Fatalf("expected unrecognised hint to be rejected")
	}
}

func TestHintOrderIsACopy(t *testing.T) {
	order := HintOrder()
	if len(order) != 3 {
		t.Fatalf("unexpected hint order length: %d", len(order))
	}
	order[0] = Hint("mutated")
	if HintOrder()[0] != HintArduinoSAMD {
		t.Fatalf("HintOrder exposed internal slice")
	}
}

func TestHintForArch(t *testing.T) {
	if h, ok := HintForArch(" RP2040 "); !ok || h != HintArduinoRP2040 {
		t.Fatalf("unexpected hint for rp2040 arch: %s (%v)", h, ok)
	}
	if _, ok := HintForArch("avr"); ok {
		t.Fatalf("expected unknown architecture to be rejected")
	}
}

func TestParseMCU(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseMCU("SAMD51")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != MCUSAMD51 {
			t.Fatalf("expected samd51, got %s", got)
		}
	})

	t.Run("sentinel", func(t *testing.T) {
		got, err := ParseMCU("none")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != MCUNone {
			t.Fatalf("expected none, got %s", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := ParseMCU("stm32"); err == nil {
			t.Fatalf("expected error for unsupported family")
		}
	})
}

func TestParseOS(t *testing.T) {
	got, err := ParseOS("FreeRTOS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != OSFreeRTOS {
		t.Fatalf("expected freertos, got %s", got)
	}
	if _, err := ParseOS("vxworks"); err == nil {
		t.Fatalf("expected error for unsupported OS")
	}
}

func TestParseSpeed(t *testing.T) {
	got, err := ParseSpeed("high")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != SpeedHigh {
		t.Fatalf("expected high, got %s", got)
	}
	if _, err := ParseSpeed("super"); err == nil {
		t.Fatalf("expected error for unsupported speed")
	}
}

func TestStringRoundTrips(t *testing.T) {
	for _, m := range []MCU{MCUNone, MCUSAMD51, MCURP2040, MCUESP32S2} {
		parsed, err := ParseMCU(m.String())
		if err != nil {
			t.Fatalf("ParseMCU(%s) returned error: %v", m, err)
		}
		if parsed != m {
			t.Fatalf("round trip mismatch: %s != %s", parsed, m)
		}
	}
}
