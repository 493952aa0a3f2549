package main

import (
	"fmt"
	"io"
	"math"

	"github.com/blackroad/facilities/internal/facility"
	"github.com/dustin/go-humanize"
)

// printHeading prints a blank line and a bold blue heading.
func printHeading(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "\n%s\n", paint(fmt.Sprintf(format, args...), styleBold, styleBlue))
}

// printNone prints the placeholder for an empty list.
func printNone(w io.Writer) {
	fmt.Fprintf(w, "  %s\n", paint("none", styleYellow))
}

// formatID formats a record id as "[N]".
func formatID(id int64) string {
	return paint(fmt.Sprintf("[%d]", id), styleCyan)
}

// formatBuilding renders one building line.
func formatBuilding(b facility.Building) string {
	return fmt.Sprintf("  %s %s  %s  floors=%d  %ssqft  type=%s",
		formatID(b.ID), paint(b.Name, styleBold), b.Address,
		b.Floors, humanize.Commaf(math.Round(b.TotalSqft)), paint(b.Type, styleYellow))
}

// formatRoom renders one room line.
func formatRoom(r facility.Room) string {
	return fmt.Sprintf("  %s %s  floor=%d  cap=%d  type=%s  [%s]",
		formatID(r.ID), paint(r.Name, styleBold), r.Floor, r.Capacity,
		paint(r.Type, styleYellow), statusPaint(r.Status))
}

// formatAsset renders one asset line.
func formatAsset(a facility.Asset) string {
	return fmt.Sprintf("  %s %s  type=%s  s/n=%s  condition=%s",
		formatID(a.ID), paint(a.Name, styleBold), paint(a.Type, styleYellow),
		a.SerialNumber, conditionPaint(a.Condition))
}

// formatCreated renders the confirmation line for a new record.
func formatCreated(kind, name, verb string, id int64) string {
	return fmt.Sprintf("%s %s %s %s (id=%d)", paint("✓", styleGreen), kind, paint(name, styleBold), verb, id)
}

// formatKV renders a "key: value" status line.
func formatKV(key string, value interface{}) string {
	return fmt.Sprintf("  %s: %s", paint(key, styleCyan), paint(fmt.Sprint(value), styleGreen))
}
