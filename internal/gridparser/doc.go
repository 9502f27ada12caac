/*
Package gridparser builds the initial grid from its text form.

The format is newline-separated rows of equal length drawn from the alphabet
`.` (empty), `#` (obstruction) and exactly one of `^ > v <` (the guard facing
north, east, south or west).
*/
package gridparser
