package main

import "questiondesk/cmd/server/cmd"

func main() {
	cmd.Execute()
}
