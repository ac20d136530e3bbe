package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/schakrabortygithub/shlo/fixture"
	"github.com/schakrabortygithub/shlo/optest"
	"github.com/schakrabortygithub/shlo/tensor"
)

func generateCmd() *cli.Command {
	var (
		planPath string
		outDir   string
		seed     int64
		verbose  bool
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate fixture files from a YAML plan",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "plan",
				Aliases:     []string{"p"},
				Usage:       "path to the YAML plan",
				Destination: &planPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output directory",
				Value:       ".",
				Destination: &outDir,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Aliases:     []string{"s"},
				Usage:       "generator seed",
				Value:       42,
				Destination: &seed,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "enable debug logging",
				Destination: &verbose,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: init logger: %v", err), 1)
			}
			defer func() { _ = logger.Sync() }()

			if err := runGenerate(logger, planPath, outDir, seed); err != nil {
				logger.Error("generation failed", zap.Error(err))
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func runGenerate(logger *zap.Logger, planPath, outDir string, seed int64) error {
	plan, err := LoadPlan(planPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	name := plan.Name
	if name == "" {
		name = "fixtures"
	}
	manifest := fixture.NewManifest(name, seed)
	logger.Info("generating fixtures",
		zap.String("plan", planPath),
		zap.String("out", outDir),
		zap.Int64("seed", seed),
		zap.Int("jobs", len(plan.Jobs)))

	for _, job := range plan.Jobs {
		file := job.Name + ".shlo"
		tensors, err := runJob(logger, job, filepath.Join(outDir, file), seed)
		if err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
		manifest.AddCase(job.Name, file, tensors)
	}

	manifestPath := filepath.Join(outDir, fixture.ManifestFileName)
	if err := manifest.Save(manifestPath); err != nil {
		return err
	}
	logger.Info("wrote manifest", zap.String("path", manifestPath), zap.String("id", manifest.ID))
	return nil
}

// runJob writes one fixture file holding one tensor per parameter and
// returns the tensor names.
func runJob(logger *zap.Logger, job Job, path string, seed int64) ([]string, error) {
	params, err := job.Types.Resolve()
	if err != nil {
		return nil, err
	}
	shape := tensor.Shape(job.Shape)
	gen := optest.NewGenerator(seed)

	fx := fixture.NewFixture(seed)
	fx.Metadata["job"] = job.Name
	for _, p := range params {
		t, err := synthesize(gen, job, p, shape)
		if err != nil {
			return nil, err
		}
		if err := fx.Add(p.Name(), t); err != nil {
			return nil, err
		}
		logger.Debug("synthesized tensor",
			zap.String("job", job.Name),
			zap.String("param", p.Name()),
			zap.String("type", t.Type().String()))
	}

	if err := fixture.WriteFile(path, fx); err != nil {
		return nil, err
	}
	logger.Info("wrote fixture",
		zap.String("path", path),
		zap.Int("tensors", fx.Len()))
	return fx.Names(), nil
}

func synthesize(gen *optest.Generator, job Job, p optest.Param, shape tensor.Shape) (*tensor.Tensor, error) {
	switch {
	case job.Synth == "iota" && job.Range != nil:
		return gen.IotaRange(p, shape, job.Range.Lo, job.Range.Lo, job.Range.Hi)
	case job.Synth == "iota":
		return gen.Iota(p, shape)
	case job.Range != nil:
		return gen.RandomRange(p, shape, job.Range.Lo, job.Range.Hi)
	default:
		return gen.Random(p, shape)
	}
}
