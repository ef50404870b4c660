// Package model defines shared data structures.
package model

// Config defines filtering settings resolved from flags and the config file.
type Config struct {
	Dict     string
	DictPath string
	Exclude  string
	Include  string
	Strict   bool
	Columns  bool
}

// Query is the raw user input for one filtering pass.
type Query struct {
	Pattern string
	Exclude string
	Include string
}
