// pkg/utils/utils.go

package utils

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NewProgressBar init a progress bar counting items, rendered on stderr
// only when it is a terminal and quiet is false.
func NewProgressBar(title string, total int64, quiet bool) (*mpb.Progress, *mpb.Bar) {
	return newProgressBar(title, total, quiet, decor.CountersNoUnit("%d / %d"))
}

// NewBytesProgressBar is NewProgressBar counting bytes.
func NewBytesProgressBar(title string, total int64, quiet bool) (*mpb.Progress, *mpb.Bar) {
	return newProgressBar(title, total, quiet, decor.CountersKibiByte("% .1f / % .1f"))
}

func newProgressBar(title string, total int64, quiet bool, counters decor.Decorator) (*mpb.Progress, *mpb.Bar) {
	var progress *mpb.Progress
	if !quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		progress = mpb.New(mpb.WithWidth(64), mpb.WithOutput(os.Stderr))
	} else {
		progress = mpb.New(mpb.WithWidth(64), mpb.WithOutput(nil))
	}
	bar := progress.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(title, decor.WCSyncWidth),
			counters,
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return progress, bar
}
