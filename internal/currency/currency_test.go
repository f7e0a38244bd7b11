package currency

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	got, err := Convert(100, "USD", "EUR")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if math.Abs(got-93) > 1e-9 {
		t.Errorf("100 USD: got %g EUR, want 93", got)
	}

	// Same currency is identity.
	got, err = Convert(42.5, "jpy", "JPY")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != 42.5 {
		t.Errorf("identity conversion: got %g, want 42.5", got)
	}
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	if _, err := Convert(0, "USD", "EUR"); err == nil {
		t.Errorf("zero amount accepted")
	}
	if _, err := Convert(-5, "USD", "EUR"); err == nil {
		t.Errorf("negative amount accepted")
	}
	if _, err := Convert(10, "XXX", "EUR"); err == nil {
		t.Errorf("unknown source currency accepted")
	}
	if _, err := Convert(10, "USD", "XXX"); err == nil {
		t.Errorf("unknown target currency accepted")
	}
}
