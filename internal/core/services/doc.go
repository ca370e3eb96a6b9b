// Package services implements the driving port interfaces.
// The search service runs the query pipeline (normalize, expand,
// score, rank) over candidates from a record source; the session
// service owns multi-turn conversation state.
//
// Services orchestrate driven ports and hold no I/O of their own.
package services
