// Package program parses the semi-structured description strings the target
// application exposes for scheduled programs.
package program

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNotProgram is returned for strings that do not carry the five expected
// segments. Callers populating lists treat it as "this element is not a
// program" and skip the entry.
var ErrNotProgram = errors.New("not a program record")

// Field label prefixes are stripped by character count, not by prefix
// matching; the labels contain accented characters, so the counts are runes.
var (
	channelPrefixLen   = utf8.RuneCountInString("Chaîne: ")
	publishedPrefixLen = utf8.RuneCountInString("Diffusée ou publiée le: ")
	durationPrefixLen  = utf8.RuneCountInString("Durée: ")
	summaryPrefixLen   = utf8.RuneCountInString("Résumé: ")
)

// Program is one scheduled program as described by the host.
type Program struct {
	Name        string
	Channel     string
	PublishedAt string
	Duration    string
	Summary     string
}

// Parse splits a raw record of the form
//
//	name; Chaîne: c; Diffusée ou publiée le: d; Durée: t; Résumé: s
//
// into its fields. The label prefixes are dropped by fixed character count;
// they are assumed exact, a shifted label silently misaligns the fields.
func Parse(raw string) (Program, error) {
	parts := strings.Split(raw, "; ")
	if len(parts) < 5 {
		return Program{}, fmt.Errorf("%w: %d segments", ErrNotProgram, len(parts))
	}
	// Summaries may themselves contain "; "; glue the tail back together.
	summary := strings.Join(parts[4:], "; ")
	return Program{
		Name:        parts[0],
		Channel:     dropRunes(parts[1], channelPrefixLen),
		PublishedAt: dropRunes(parts[2], publishedPrefixLen),
		Duration:    dropRunes(parts[3], durationPrefixLen),
		Summary:     dropRunes(summary, summaryPrefixLen),
	}, nil
}

// String renders the program the way the pickers display it: name plus the
// optional duration and summary.
func (p Program) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Duration != "" {
		b.WriteString(" | Durée: ")
		b.WriteString(p.Duration)
	}
	if p.Summary != "" {
		b.WriteString(" | Sommaire : ")
		b.WriteString(p.Summary)
	}
	return b.String()
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[n:])
}
