// Command ratcalc is an exact rational calculator.
//
// Statements are evaluated by package calc, e.g.
//
//	ratcalc eval 'let half = 1/2' 'half + 1/3'
//	ratcalc run script.txt
//	ratcalc demo
//
// With no subcommand, an interactive prompt is started.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
