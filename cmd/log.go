package cmd

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mckilla",
	Level:  log.InfoLevel,
})
