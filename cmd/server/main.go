package main

import "github.com/howdythrift/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
