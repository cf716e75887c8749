// Package env keeps names of environment variables with special significance
// to nutsh.
package env

// Environment variables with special significance to nutsh.
const (
	HOME        = "HOME"
	PATH        = "PATH"
	PATHEXT     = "PATHEXT"
	PWD         = "PWD"
	SHLVL       = "SHLVL"
	USERPROFILE = "USERPROFILE"
)
