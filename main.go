package main

import "github.com/gaurav-prasanna/scpdump/cmd"

func main() {
	cmd.Execute()
}
