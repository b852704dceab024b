package pathworld

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// BoxJob names the input and output of one box world run.
type BoxJob struct {
	Input     string
	Output    string
	Size      BoxSize
	Viewpoint Viewpoint
}

// CylinderJob names the input and output of one cylinder world run.
type CylinderJob struct {
	Input  string
	Output string
}

// GenerateBoxWorld reads the box path, renders it and writes the world file.
// Nothing is written if reading or rendering fails.
func GenerateBoxWorld(fs afero.Fs, job BoxJob, log zerolog.Logger) error {
	points, err := ReadPoints(fs, job.Input, BoxRow)
	if err != nil {
		return err
	}
	log.Debug().Str("input", job.Input).Int("points", len(points)).Msg("read path")

	models, err := GenerateBoxModels(points, job.Size)
	if err != nil {
		return fmt.Errorf("generate models: %w", err)
	}

	vp := job.Viewpoint
	if err := CreateWorldFile(fs, job.Output, models, &vp); err != nil {
		return err
	}
	log.Info().Str("output", job.Output).Int("markers", len(points)).Msg("wrote box world")
	return nil
}

// GenerateCylinderWorld is GenerateBoxWorld for cylinder markers, without a camera.
func GenerateCylinderWorld(fs afero.Fs, job CylinderJob, log zerolog.Logger) error {
	points, err := ReadPoints(fs, job.Input, CylinderRow)
	if err != nil {
		return err
	}
	log.Debug().Str("input", job.Input).Int("points", len(points)).Msg("read path")

	models, err := GenerateCylinderModels(points)
	if err != nil {
		return fmt.Errorf("generate models: %w", err)
	}

	if err := CreateWorldFile(fs, job.Output, models, nil); err != nil {
		return err
	}
	log.Info().Str("output", job.Output).Int("markers", len(points)).Msg("wrote cylinder world")
	return nil
}
