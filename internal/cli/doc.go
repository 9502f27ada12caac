// Package cli turns command-line arguments into an app.Config. Usage errors
// are reported as *ExitError so the entrypoint can pick the exit code.
package cli
