// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/templexxx/cyclic"
)

const (
	optionNameConfig    = "config"
	optionNameGenerator = "generator"
	optionNameLength    = "length"
	optionNameWorkers   = "workers"
	optionNameVerbosity = "verbosity"
	optionNameProgress  = "progress"
)

var errIllegalWorkers = errors.New("illegal workers: < 0")

type command struct {
	root   *cobra.Command
	config *viper.Viper
	logger *logrus.Logger
}

type option func(*command)

func withArgs(args ...string) option {
	return func(c *command) {
		c.root.SetArgs(args)
	}
}

func withInput(r io.Reader) option {
	return func(c *command) {
		c.root.SetIn(r)
	}
}

func withOutput(w io.Writer) option {
	return func(c *command) {
		c.root.SetOut(w)
		c.root.SetErr(w)
	}
}

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "cyclicscan",
			Short:         "Error detection analysis of binary cyclic codes",
			SilenceErrors: true,
			SilenceUsage:  true,
		},
		config: viper.New(),
	}
	c.root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := c.initConfig(); err != nil {
			return err
		}
		return c.initLogger(cmd)
	}

	for _, o := range opts {
		o(c)
	}

	c.initGlobalFlags()
	c.initScanCmd()
	c.initCountCmd()
	c.initGeneratorsCmd()

	if err = c.config.BindPFlags(c.root.PersistentFlags()); err != nil {
		return nil, err
	}
	return c, nil
}

// Execute runs the root command with os.Args.
func Execute() error {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) Execute() error {
	return c.root.Execute()
}

func (c *command) initGlobalFlags() {
	gflags := c.root.PersistentFlags()
	gflags.String(optionNameConfig, "", "config file (yaml, json or toml)")
	gflags.String(optionNameGenerator, cyclic.DefaultGenerator.String(), "generator polynomial coefficients, most significant first")
	gflags.Int(optionNameLength, cyclic.DefaultLength, "codeword length n")
	gflags.Int(optionNameWorkers, 1, "goroutines checking error vectors; 0 means one per CPU")
	gflags.String(optionNameVerbosity, "info", "log verbosity level: silent, error, warn, info, debug or trace")
	gflags.Bool(optionNameProgress, true, "show progress bar")
}

func (c *command) initConfig() error {
	c.config.SetEnvPrefix("cyclic")
	c.config.AutomaticEnv()
	c.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if f := c.config.GetString(optionNameConfig); f != "" {
		c.config.SetConfigFile(f)
		if err := c.config.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", f, err)
		}
	}
	return nil
}

func (c *command) initLogger(cmd *cobra.Command) error {
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())

	v := strings.ToLower(c.config.GetString(optionNameVerbosity))
	if v == "silent" {
		l.SetOutput(ioutil.Discard)
	} else {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("verbosity: %w", err)
		}
		l.SetLevel(lvl)
	}
	c.logger = l
	return nil
}

// codec creates a Codec from generator and length options.
func (c *command) codec() (*cyclic.Codec, error) {
	gen, err := cyclic.ParseVector(c.config.GetString(optionNameGenerator), -1)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	codec, err := cyclic.New(gen, c.config.GetInt(optionNameLength))
	if err != nil {
		return nil, fmt.Errorf("new codec: %w", err)
	}
	return codec, nil
}

func (c *command) workers() (int, error) {
	w := c.config.GetInt(optionNameWorkers)
	if w < 0 {
		return 0, errIllegalWorkers
	}
	if w == 0 {
		w = runtime.NumCPU()
	}
	return w, nil
}
