package report

import (
	"io"

	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

type Progress struct {
	p *mpb.Progress
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{
		p: mpb.New(mpb.WithOutput(w), mpb.WithWidth(64)),
	}
}

type Tracker struct {
	bar *mpb.Bar
}

func (p *Progress) Track(name string, total int) *Tracker {
	bar := p.p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)
	return &Tracker{bar: bar}
}

// Add is shaped to be used as probability.Pricer.Progress.
func (t *Tracker) Add(n int) {
	t.bar.IncrBy(n)
}

// Abort stops the bar so Wait does not block on a run that failed early.
func (t *Tracker) Abort() {
	t.bar.Abort(false)
}

func (p *Progress) Wait() {
	p.p.Wait()
}
