package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/malusev998/nbp-rates/cli/cmd"
)

const (
	exitCodeOK = iota
	exitCodeRunError
)

func main() {
	err := cmd.Execute(&cmd.Config{
		Ctx:    context.Background(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	if err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.WithError(err).Error("nbp-rates failed")
		os.Exit(exitCodeRunError)
	}

	os.Exit(exitCodeOK)
}
