// Package fbitda provides the state engine of the FBITDA valuation game, a
// two-team simulation where one team enters the terms of a company valuation
// and the other team reviews them.
//
// The core functionalities include:
//   - Valuation: a stateless calculator turning the simulation inputs into a
//     valuation amount and its share of a fixed ceiling.
//   - Store: the single source of truth holding inputs, valuation, review
//     statuses, elapsed time, user and visibility flags. It is the only
//     mutation surface and enforces which team may change what.
//   - Persistence: a small subset of the state (the user and the first-time
//     guidance flag) is saved to durable storage on every change and restored
//     when a Store is created.
//   - Terms: metadata for every input (display name, unit, bounds, advisory
//     rules) used both for validation and for display.
//
// This package serves as the foundational logic for the `fbitda` command-line
// tool.
package fbitda
