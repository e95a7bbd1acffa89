package main

import (
	"path/filepath"

	"github.com/midbel/minichart/decode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type manifest struct {
	Jobs []job `yaml:"jobs"`
}

func batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <manifest>",
		Short: "draw every chart listed in a yaml manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			m, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			dir := filepath.Dir(args[0])
			g, ctx := errgroup.WithContext(cmd.Context())
			if cfg.Jobs > 0 {
				g.SetLimit(cfg.Jobs)
			}
			for i := range m.Jobs {
				j := resolveJob(m.Jobs[i], dir, cfg.Format)
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					if err := renderJob(cfg, j, logger); err != nil {
						return errors.WithMessagef(err, "job %s", j.Output)
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			logger.WithField("jobs", len(m.Jobs)).Info("batch done")
			return nil
		},
	}
}

func loadManifest(file string) (manifest, error) {
	var m manifest
	r, err := decode.Open(file)
	if err != nil {
		return m, err
	}
	defer r.Close()
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return m, errors.Wrapf(err, "decode manifest %s", file)
	}
	if len(m.Jobs) == 0 {
		return m, errors.Errorf("%s: no jobs", file)
	}
	return m, nil
}

// resolveJob makes the relative paths of a job relative to the directory
// of its manifest and gives it an output file named after its input.
func resolveJob(j job, dir, format string) job {
	if j.Input != "" && !filepath.IsAbs(j.Input) && !decode.IsRemote(j.Input) && j.Input != "-" {
		j.Input = filepath.Join(dir, j.Input)
	}
	if j.Output == "" {
		if j.Format != "" {
			format = j.Format
		}
		name := j.Kind
		if j.Input != "" {
			name = getIdent(j.Input)
		}
		j.Output = filepath.Join(dir, name+"."+format)
	} else if !filepath.IsAbs(j.Output) {
		j.Output = filepath.Join(dir, j.Output)
	}
	return j
}

