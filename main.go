package main

import "stock-terminal/cmd"

func main() {
	cmd.Execute()
}
