package main

import (
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/cli"
)

func main() {
	cli.Execute()
}
