package main

import (
	"os"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], defaultDeps()))
}
