// Package main provides the entry point for the tdate application.
//
// tdate prints the Thelemic date for a moment and place: the zodiacal
// positions of the Sun and Moon, the Latin day name, and the Anno year
// of the era begun at the vernal equinox of 1904.
package main

import cmd "github.com/toozej/tdate/cmd/tdate"

// main is the entry point of the tdate application.
// It delegates execution to the cmd package which handles all
// command-line interface functionality.
func main() {
	cmd.Execute()
}
