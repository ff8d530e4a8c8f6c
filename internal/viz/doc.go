// Package viz provides a terminal live view of the apparatus.
//
// The view is a Bubble Tea program rendering the containers, connecting
// tube, and piston on a Braille-based pixel [Canvas], with a stats panel
// tracing the pressure imbalance over time.
//
// # Key Bindings
//
//	+ / up   - Push the piston (increase external pressure)
//	- / down - Pull the piston (decrease external pressure)
//	Space    - Pause/Resume
//	R        - Reset to initial state
//	Q        - Quit
package viz
