package main

import "github.com/LavenderBridge/studyplan/cmd"

func main() {
	cmd.Execute()
}
