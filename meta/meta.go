// meta/meta.go
package meta

// LEARNING_RATE is the step size of the local linear model.
const LEARNING_RATE = 0.01

// WINNING_RATIO adds one winning pile per WINNING_RATIO extracted examples.
const WINNING_RATIO = 10

// DIAGNOSTICS_EVERY runs the diagnostics every n rounds.
const DIAGNOSTICS_EVERY = 100

// DIAGNOSTIC_SAMPLES is the number of fresh piles per diagnostic mean.
const DIAGNOSTIC_SAMPLES = 100

// HOLDOUT_SIZE is the number of leading dataset records kept for evaluation.
const HOLDOUT_SIZE = 1000

const LOSS_SCORE = 100
