package main

import "github.com/Another0Noob/recipe-browser/cmd"

func main() {
	cmd.Execute()
}
