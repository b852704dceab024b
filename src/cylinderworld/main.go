package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/ysk5201/generate-desired-path-in-gazebo-world/src/config"
	"github.com/ysk5201/generate-desired-path-in-gazebo-world/src/logging"
	"github.com/ysk5201/generate-desired-path-in-gazebo-world/src/pathworld"
)

func run(fs afero.Fs, configDir string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(fs, configDir)
	if err != nil {
		return err
	}
	log := logging.New(stderr, cfg.LogLevel)

	job := pathworld.CylinderJob{
		Input:  cfg.Cylinder.Input,
		Output: cfg.Cylinder.Output,
	}

	if err := pathworld.GenerateCylinderWorld(fs, job, log); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "World file generated: %s\n", job.Output)
	return nil
}

func main() {
	if err := run(afero.NewOsFs(), ".", os.Stdout, os.Stderr); err != nil {
		logger := logging.New(os.Stderr, "info")
		logger.Fatal().Err(err).Msg("cylinder world generation failed")
	}
}
