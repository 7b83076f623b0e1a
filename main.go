package main

import "github.com/jsphweid/twelvetet/cmd"

func main() {
	cmd.Execute()
}
