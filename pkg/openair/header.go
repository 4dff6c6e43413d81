package openair

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/beetlebugorg/openair/internal/converter"
	"github.com/beetlebugorg/openair/pkg/yaixm"
)

// Disclaimer opens every generated file.
const Disclaimer = `UK Airspace
Alan Sparrow (airspace@asselect.uk)

I have tried to make this data as accurate as possible but
there will still be errors. Don't blame me if you go somewhere you
should not have gone while using this data.

To the extent possible under law, Alan Sparrow has waived all
copyright and related or neighbouring rights to this file. The data
in this file is based on the work of others including: George Knight,
Geoff Brown, Peter Desmond and Rory O'Connor.  The data is originally
sourced from the UK Aeronautical Information Package (AIP).
`

// headerWidth is the column settings are wrapped at.
const headerWidth = 70

// Header returns the comment block written before the airspace: the
// disclaimer, release note, AIRAC date, production time, commit and the
// settings used. Every line starts with "*".
func Header(doc *yaixm.Document, settings map[string]string, now time.Time) string {
	commit := doc.Release.Commit
	if commit == "" {
		commit = "Unknown"
	}

	lines := strings.Split(strings.TrimSuffix(Disclaimer, "\n"), "\n")
	lines = append(lines, "")
	lines = append(lines, strings.Split(doc.Release.Note, "\n")...)
	lines = append(lines,
		"AIRAC: "+doc.AiracDate(),
		"Produced by asselect.uk: "+now.UTC().Truncate(time.Second).Format(time.RFC3339),
		"Commit: "+commit)
	lines = append(lines, wrap(formatSettings(settings), headerWidth)...)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(converter.Comment{Text: line}.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// formatSettings renders settings in key order.
func formatSettings(settings map[string]string) string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, settings[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// wrap breaks text on spaces into lines of at most width columns. Words
// longer than width get a line of their own.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
