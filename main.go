package main

import "github.com/realguide/backend/cmd"

func main() {
	cmd.Execute()
}
