// Package seedling is the library half of the seedling project
// template. It exposes two deliberately small functions, Add and
// Greet, that exist to be imported, tested, and eventually replaced
// by a real project's own code. The cmd/seedling binary demonstrates
// calling them.
package seedling
