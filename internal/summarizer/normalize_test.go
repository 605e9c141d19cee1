package summarizer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"collapses whitespace", "  we   need\tto\n\nship  ", "we need to ship"},
		{"hesitation sounds", "Um we uh need to ship", "we need to ship"},
		{"case insensitive", "UM, We need to ship", "We need to ship"},
		{"discourse markers", "It was, you know, basically done", "It was, done"},
		{"phrase across whitespace", "you \n know the plan", "the plan"},
		{"whole words only", "The umbrella and the erratum", "The umbrella and the erratum"},
		{"acknowledgements", "Mhm uh-huh okay let's go", "okay let's go"},
		{"nested filler", "you um know we literally agreed", "we agreed"},
		{"accented word ending in filler", "Müer kommt", "Müer kommt"},
		{"accented word before filler", "déer hunt", "déer hunt"},
		{"accented capital before filler", "Ýah is a name", "Ýah is a name"},
		{"filler between accented words", "Ça va, uh, très bien", "Ça va, très bien"},
		{"adjacent fillers", "um uh er we start", "we start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Um, so, you know, we actually decided to ship.",
		"you um know what i uh mean",
		"  Literally   everything,  basically. ",
		"Ça va? Oui, uh, très bien!",
		"er er er er er",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
