package main

import "github.com/longkey1/chatbox/cmd"

func main() {
	cmd.Execute()
}
