package program

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	raw := "Journal; Chaîne: TF1; Diffusée ou publiée le: 2024-01-01; Durée: 00:20:00; Résumé: Actualités"
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Name != "Journal" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Channel != "TF1" {
		t.Errorf("Channel = %q", p.Channel)
	}
	if p.PublishedAt != "2024-01-01" {
		t.Errorf("PublishedAt = %q", p.PublishedAt)
	}
	if p.Duration != "00:20:00" {
		t.Errorf("Duration = %q", p.Duration)
	}
	if p.Summary != "Actualités" {
		t.Errorf("Summary = %q", p.Summary)
	}
}

func TestParse_TooFewSegments(t *testing.T) {
	for _, raw := range []string{
		"",
		"Journal",
		"Journal; Chaîne: TF1; Durée: 00:20:00",
	} {
		if _, err := Parse(raw); !errors.Is(err, ErrNotProgram) {
			t.Errorf("Parse(%q): expected ErrNotProgram, got %v", raw, err)
		}
	}
}

func TestParse_SummaryKeepsSeparators(t *testing.T) {
	raw := "Journal; Chaîne: TF1; Diffusée ou publiée le: 2024-01-01; Durée: 00:20:00; Résumé: Partie 1; suite et fin"
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Summary != "Partie 1; suite et fin" {
		t.Errorf("Summary = %q", p.Summary)
	}
}

func TestString(t *testing.T) {
	p := Program{Name: "Journal", Duration: "00:20:00", Summary: "Actualités"}
	want := "Journal | Durée: 00:20:00 | Sommaire : Actualités"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	p = Program{Name: "Journal"}
	if got := p.String(); got != "Journal" {
		t.Errorf("String() = %q, want bare name", got)
	}
}
