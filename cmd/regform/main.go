package main

import (
	"github.com/jpmiranda/regform/internal/cli"
)

func main() {
	cli.Execute()
}
