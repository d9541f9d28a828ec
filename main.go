package main

import "github.com/rotblauer/airfoil/cmd"

func main() {
	cmd.Execute()
}
