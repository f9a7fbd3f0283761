// Package ui is the Bubble Tea front end for a slide deck.
//
// Pieces:
//   - Stage: the deck.Renderer that keeps display state and draws slides,
//     the progress bar, the footer, and the print-mode document
//   - cmdScheduler: deck.Scheduler backed by tea.Tick, so controller timers
//     fire on the update loop
//   - AppModel: routes keys, mouse clicks, swipes, and resizes to the
//     controller
//
// Timers never run on their own goroutine; every callback is delivered as
// a message and handled inside Update.
package ui
