// Package terminal emulates a 9x9 bi-color button pad in a terminal.
//
// Each pad button is drawn as a block of cells; the mouse presses grid and round
// buttons and a few keys stand in for the arrow, restart, and quit buttons.
// Input is read on its own goroutine and handed to the game loop through a channel.
package terminal
