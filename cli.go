//go:build cli
// +build cli

package main

import (
	_ "github.com/keshavk21/Think41/custom"

	"github.com/keshavk21/Think41/cmd"
	"github.com/keshavk21/Think41/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
