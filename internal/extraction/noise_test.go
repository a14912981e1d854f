package extraction

import "testing"

func TestIsNoise(t *testing.T) {
	noisy := []string{
		"Page 3",
		"page 12",
		"2/5",
		"42",
		"-----",
		"***",
		"www.mamaafrica.rw",
		"https://example.com/menu",
		"info@mamaafrica.rw",
		"Call us: 0788 123 456",
		"KG 7 Avenue, Kigali",
		"© 2024 All rights reserved",
		"VAT included",
		"Service charge 10%",
		"Terms and Conditions apply",
		"MENU",
		"menu",
		"a",
		"",
		"  ",
	}
	for _, line := range noisy {
		if !IsNoise(line) {
			t.Fatalf("expected noise: %q", line)
		}
	}
}

func TestIsNoiseKeepsContent(t *testing.T) {
	kept := []string{
		"STARTERS",
		"Spring Rolls 3500 RWF",
		"Grilled Chicken 8000 RWF served with rice",
		"Desserts:",
		"Club Sandwich $9.50 with fries",
	}
	for _, line := range kept {
		if IsNoise(line) {
			t.Fatalf("should not be noise: %q", line)
		}
	}
}
