package providers

import (
	"errors"
	"testing"
)

func TestGetNutritionProvider(t *testing.T) {
	cases := map[string]string{
		"":          "apininjas",
		"apininjas": "apininjas",
		"Edamam":    "edamam",
	}
	for in, want := range cases {
		p, err := GetNutritionProvider(in, Config{})
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if p.Name() != want {
			t.Fatalf("%q: got %s want %s", in, p.Name(), want)
		}
	}

	if _, err := GetNutritionProvider("usda", Config{}); !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}
