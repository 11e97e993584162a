package main

import "github.com/passgen/passgen-go/cmd/passgen/internal/cmd"

func main() {
	cmd.Execute()
}
