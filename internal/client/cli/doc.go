// Package cli provides the interactive MyGastronomy command-line client.
//
// It reads configuration, talks to the HTTP API through internal/client/api
// and runs a small REPL:
//
//	register  create an account and keep the returned token
//	login     authenticate and keep the returned token
//	whoami    show the account behind the current token
//	logout    forget the token
//	exit      leave the program
//
// Passwords are read without echo and wiped after use.
package cli
