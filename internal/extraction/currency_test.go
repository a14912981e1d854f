package extraction

import "testing"

func TestDetectCurrencyFirstPatternWins(t *testing.T) {
	// Document carries both markers; RWF is earlier in the pattern
	// list, so it must win regardless of token position.
	text := "Burger $5 or 4500 RWF"
	if got := DetectCurrency(text, CurrencyUSD); got != CurrencyRWF {
		t.Fatalf("expected RWF, got %s", got)
	}
}

func TestDetectCurrencySymbols(t *testing.T) {
	cases := map[string]CurrencyCode{
		"Club Sandwich $9.50":     CurrencyUSD,
		"Espresso €2.50":          CurrencyEUR,
		"Fish and Chips £7":       CurrencyGBP,
		"Chips Masala Ksh 350":    CurrencyKES,
		"Nyama Choma TSh 12,000":  CurrencyTZS,
		"Rolex UGX 5,000":         CurrencyUGX,
		"Brochette 2500 francs":   CurrencyRWF,
	}
	for text, want := range cases {
		if got := DetectCurrency(text, CurrencyUnknown); got != want {
			t.Fatalf("%q: expected %s, got %s", text, want, got)
		}
	}
}

func TestDetectCurrencyFallsBackToDefault(t *testing.T) {
	text := "Spring Rolls 3500\nGrilled Chicken 8000"

	if got := DetectCurrency(text, CurrencyKES); got != CurrencyKES {
		t.Fatalf("expected configured default KES, got %s", got)
	}
	// Unknown default resolves to the system default.
	if got := DetectCurrency(text, CurrencyUnknown); got != DefaultCurrency {
		t.Fatalf("expected %s, got %s", DefaultCurrency, got)
	}
}

func TestDetectCurrencyDeterministic(t *testing.T) {
	text := "PIZZAS\nMargherita 12000 RWF"
	first := DetectCurrency(text, CurrencyUnknown)
	second := DetectCurrency(text, CurrencyUnknown)
	if first != second {
		t.Fatalf("detection not deterministic: %s vs %s", first, second)
	}
}

func TestNormalizePriceZeroDecimal(t *testing.T) {
	if got := NormalizePrice(3500.4, CurrencyRWF); got != 3500 {
		t.Fatalf("expected 3500, got %v", got)
	}
	if got := NormalizePrice(3500.5, CurrencyRWF); got != 3501 {
		t.Fatalf("expected 3501, got %v", got)
	}
	if got := NormalizePrice(12000.49, CurrencyUGX); got != 12000 {
		t.Fatalf("expected 12000, got %v", got)
	}
}

func TestNormalizePriceTwoDecimal(t *testing.T) {
	if got := NormalizePrice(9.505, CurrencyUSD); got != 9.51 {
		t.Fatalf("expected 9.51, got %v", got)
	}
	if got := NormalizePrice(9.5, CurrencyUSD); got != 9.5 {
		t.Fatalf("expected 9.5, got %v", got)
	}
}

func TestNormalizePriceIdempotent(t *testing.T) {
	currencies := []CurrencyCode{
		CurrencyRWF, CurrencyUSD, CurrencyEUR, CurrencyGBP,
		CurrencyKES, CurrencyTZS, CurrencyUGX,
	}
	values := []float64{0, 0.004, 9.505, 3500.4, 999999.99}

	for _, c := range currencies {
		for _, v := range values {
			once := NormalizePrice(v, c)
			twice := NormalizePrice(once, c)
			if once != twice {
				t.Fatalf("not idempotent for %v %s: %v vs %v", v, c, once, twice)
			}
		}
	}
}
