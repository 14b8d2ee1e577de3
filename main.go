package main

import "github.com/nightlight-labs/nightlight/cmd"

func main() {
	cmd.Execute()
}
