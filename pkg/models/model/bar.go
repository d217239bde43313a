package model

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// Bar shows how far iterative deepening got.
type Bar progressbar.ProgressBar

func NewBar(maxDepth int, description string) *Bar {
	return (*Bar)(progressbar.NewOptions(maxDepth,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

// Depth moves the bar to a completed depth. It fits assess.WithProgress.
func (b *Bar) Depth(depth, maxDepth int) {
	bar := (*progressbar.ProgressBar)(b)
	bar.Describe(fmt.Sprintf("depth %d/%d", depth, maxDepth))
	_ = bar.Set(depth)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}
