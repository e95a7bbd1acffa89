package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/midbel/minichart/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	kindLine     = "line"
	kindPie      = "pie"
	kindColumn   = "column"
	kindScatter  = "scatter"
	kindProgress = "progress"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "minichart",
		Short:         "draw small line, pie, column, scatter and progress charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.Flags(root.PersistentFlags())

	for _, kind := range []string{kindLine, kindPie, kindColumn, kindScatter} {
		root.AddCommand(datasetCommand(kind))
	}
	root.AddCommand(progressCommand())
	root.AddCommand(batchCommand())
	return root
}

func datasetCommand(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <dataset>",
		Short: "draw a " + kind + " chart from a json, yaml or csv dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			return renderJob(cfg, job{Kind: kind, Input: args[0]}, logger)
		},
	}
}

func progressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   kindProgress + " <percent>",
		Short: "draw a progress bar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "%s: invalid progress", args[0])
			}
			return renderJob(cfg, job{Kind: kindProgress, Progress: value}, logger)
		},
	}
}

func setup(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	cfg, _, err := config.Load(cmd.Flags())
	if err != nil {
		return cfg, nil, err
	}
	logger, err := cfg.Logger()
	return cfg, logger, err
}
