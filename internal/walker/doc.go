// Package walker advances the guard across a grid one rule application at a
// time until it either leaves the map or is proven to be stuck in a loop.
//
// The rules are fixed: move straight ahead while the next cell is free, turn
// 90 degrees clockwise in place when it is an obstruction. Each obstruction
// remembers the headings it was approached from during the current run; being
// approached twice from the same heading means the guard has re-entered a state
// it already occupied, which under deterministic rules repeats forever.
package walker
