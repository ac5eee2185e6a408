package main

import "github.com/LENAX/ppm/pkg/cli/cmd"

func main() {
	cmd.Execute()
}
