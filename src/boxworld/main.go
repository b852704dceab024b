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

	job := pathworld.BoxJob{
		Input:  cfg.Box.Input,
		Output: cfg.Box.Output,
		Size: pathworld.BoxSize{
			Length: cfg.Box.Length,
			Width:  cfg.Box.Width,
			Height: cfg.Box.Height,
		},
		Viewpoint: pathworld.Viewpoint{
			X: cfg.Box.Viewpoint.X,
			Y: cfg.Box.Viewpoint.Y,
			Z: cfg.Box.Viewpoint.Z,
		},
	}

	if err := pathworld.GenerateBoxWorld(fs, job, log); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "World file generated: %s\n", job.Output)
	return nil
}

func main() {
	if err := run(afero.NewOsFs(), ".", os.Stdout, os.Stderr); err != nil {
		logger := logging.New(os.Stderr, "info")
		logger.Fatal().Err(err).Msg("box world generation failed")
	}
}
