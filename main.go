package main

import "github.com/crystaldolphin/toolbridge/cmd"

func main() {
	cmd.Execute()
}
