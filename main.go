package main

import "github.com/travelwing/travelwing/cmd"

func main() {
	cmd.Execute()
}
