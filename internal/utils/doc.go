// Package utils provides small general-purpose helpers shared across the
// application: JSON response writing and UUID generation.
package utils
