package grana

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_arithmetic(t *testing.T) {
	if got := BRL(100).Add(BRL(50)); !got.Equal(BRL(150)) {
		t.Errorf("100 + 50 = %v, want %v", got, BRL(150))
	}
	if got := BRL(100).Sub(BRL(250)); !got.Equal(BRL(-150)) {
		t.Errorf("100 - 250 = %v, want %v", got, BRL(-150))
	}
	if got := BRL(100).Neg(); !got.Equal(BRL(-100)) {
		t.Errorf("Neg() = %v, want %v", got, BRL(-100))
	}
}

func TestMoney_emptyCurrencyIsWeak(t *testing.T) {
	got := Money{}.Add(BRL(10))
	if got.Currency() != DefaultCurrency {
		t.Errorf("zero + BRL currency = %q, want %q", got.Currency(), DefaultCurrency)
	}
	if !got.Equal(BRL(10)) {
		t.Errorf("zero + 10 = %v, want %v", got, BRL(10))
	}
}

func TestMoney_DivN(t *testing.T) {
	if got := BRL(1000).DivN(4); !got.Equal(BRL(250)) {
		t.Errorf("1000 / 4 = %v, want %v", got, BRL(250))
	}
	if got := BRL(0.30).DivN(3); !got.Equal(BRL(0.10)) {
		t.Errorf("0.30 / 3 = %v, want %v", got, BRL(0.10))
	}
}

func TestMoney_ApplyRate(t *testing.T) {
	got := BRL(1000).ApplyRate(decimal.NewFromFloat(1.1))
	if !got.Equal(BRL(11)) {
		t.Errorf("1.1%% of 1000 = %v, want %v", got, BRL(11))
	}
}

func TestMoney_String(t *testing.T) {
	if got := BRL(1234.5).String(); got != "R$1.234,50" {
		t.Errorf("String() = %q, want %q", got, "R$1.234,50")
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := BRL(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := BRL(10).SignedString(); got[0] != '+' {
		t.Errorf("SignedString(10) = %q, want a + prefix", got)
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(BRL(12.345))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// the amount is rounded to the currency's fraction.
	if string(data) != `{"currency":"BRL","amount":12.35}` {
		t.Errorf("Marshal = %s", data)
	}
}
