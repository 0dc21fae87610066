package main

import (
	"os"

	"github.com/lexcomply/admin/pkg/cli"
)

var (
	version = "dev"
)

func main() {
	c := cli.New("lexadmin", version)

	os.Exit(c.Execute(os.Args[1:]))
}
