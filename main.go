package main

import "plucheck/cmd"

func main() {
	cmd.Execute()
}
