// Package viz renders capital paths in the terminal: static asciigraph
// line charts for saved runs and a bubbletea live view that animates
// the recurrence toward its steady state.
package viz
