package main

import (
	"io"
	"os"

	"github.com/blackroad/facilities/internal/config"
	"github.com/blackroad/facilities/internal/facility"
	"github.com/mattn/go-isatty"
)

type style int

const (
	styleGreen style = iota
	styleRed
	styleCyan
	styleYellow
	styleBlue
	styleBold
)

// styleCodes maps each style to its ANSI escape sequence.
var styleCodes = map[style]string{
	styleGreen:  "\033[0;32m",
	styleRed:    "\033[0;31m",
	styleCyan:   "\033[0;36m",
	styleYellow: "\033[1;33m",
	styleBlue:   "\033[0;34m",
	styleBold:   "\033[1m",
}

const styleReset = "\033[0m"

// colorEnabled is decided once in setup from the color setting and stdout.
var colorEnabled bool

// colorFor reports whether output to w should be colorized under mode.
func colorFor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// paint wraps text in the given styles when color is enabled.
func paint(text string, styles ...style) string {
	if !colorEnabled || len(styles) == 0 {
		return text
	}
	var prefix string
	for _, s := range styles {
		prefix += styleCodes[s]
	}
	return prefix + text + styleReset
}

// conditionPaint colors an asset condition; unknown conditions are left plain.
func conditionPaint(condition string) string {
	switch condition {
	case facility.ConditionExcellent:
		return paint(condition, styleGreen)
	case facility.ConditionGood:
		return paint(condition, styleCyan)
	case facility.ConditionFair:
		return paint(condition, styleYellow)
	case facility.ConditionPoor:
		return paint(condition, styleRed)
	default:
		return condition
	}
}

// statusPaint colors a room status: green when available, yellow otherwise.
func statusPaint(status string) string {
	if status == facility.StatusAvailable {
		return paint(status, styleGreen)
	}
	return paint(status, styleYellow)
}
