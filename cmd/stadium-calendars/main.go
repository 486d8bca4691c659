package main

import "github.com/gorillacarts/stadium-calendars/internal/cli"

func main() {
	cli.Execute()
}
