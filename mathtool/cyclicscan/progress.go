// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// progressBar is a progressbar.ProgressBar which is nil when progress is off.
type progressBar struct {
	bar *progressbar.ProgressBar
}

func (c *command) newProgressBar(cmd *cobra.Command, max int64, desc string) *progressBar {
	if !c.config.GetBool(optionNameProgress) {
		return &progressBar{}
	}
	return &progressBar{bar: progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

func (p *progressBar) add(n int) {
	if p.bar != nil {
		_ = p.bar.Add64(int64(n))
	}
}

func (p *progressBar) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
