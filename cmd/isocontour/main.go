package main

import "github.com/arl/isocontour/cmd/isocontour/cmd"

func main() {
	cmd.Execute()
}
