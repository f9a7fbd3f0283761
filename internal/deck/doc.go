// Package deck implements the slide navigation state machine.
//
// A Controller holds the current slide index and a transition guard. Slide
// changes happen in two scheduled phases (swap, then settle) and requests
// arriving while a transition is in flight are dropped. Everything visible
// is pushed through a Renderer; timers go through a Scheduler so the state
// machine runs on whatever event loop the caller provides.
package deck
