package seedling

import "fmt"

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Greet returns a greeting message for the given name. The name is
// inserted verbatim; an empty name yields "Hello, !".
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
