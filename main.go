package main

import (
	cmd "github.com/celarium/celarium/cmd/celarium"
	"github.com/celarium/celarium/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting celarium")
	cmd.Execute()
}
