package main

import (
	// Register publishers via side-effects
	_ "proxyconv/internal/publishers/file"
	_ "proxyconv/internal/publishers/stdout"
)

func main() {
	Execute()
}
