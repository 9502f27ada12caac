// Package hcl provides the concrete HCL implementation of the configuration
// Loader defined in the `config` package. It is responsible for file
// discovery, parsing, expression evaluation and CTY-to-Go data binding.
package hcl
