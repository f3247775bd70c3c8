package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptPassword asks for the FTP password on the controlling terminal
// without echo. Without a terminal it returns an empty password so that
// anonymous and key-less setups still start.
func promptPassword(user, address string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprintf(os.Stderr, "Password for %s@%s: ", user, address)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}

	return string(password), nil
}
