package data

import "testing"

func TestEnvironmentZeroValueIsProduction(t *testing.T) {
	var env Environment

	if env != Production {
		t.Fatalf("zero Environment = %v, want production", env)
	}
	if env.ShowDrafts() {
		t.Error("production must not show drafts")
	}
	if !Development.ShowDrafts() {
		t.Error("development must show drafts")
	}
}

func TestEnvironmentFor(t *testing.T) {
	if got := EnvironmentFor(true); got != Development {
		t.Errorf("EnvironmentFor(true) = %v, want development", got)
	}
	if got := EnvironmentFor(false); got != Production {
		t.Errorf("EnvironmentFor(false) = %v, want production", got)
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in      string
		want    Environment
		wantErr bool
	}{
		{"", Production, false},
		{"production", Production, false},
		{"PROD", Production, false},
		{"development", Development, false},
		{" dev ", Development, false},
		{"true", Development, false},
		{"TRUE", Development, false},
		{"1", Development, false},
		{"false", Production, false},
		{"0", Production, false},
		{"staging", Production, true},
		{"yes", Production, true},
	}

	for _, tt := range tests {
		got, err := ParseEnvironment(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEnvironment(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEnvironment(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
