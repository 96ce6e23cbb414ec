package util

// Progress reports, when -verbose is set, how many of a known number of
// snapshots have been analyzed. Errors are always reported.
type Progress struct {
	errs chan error
	done chan struct{}
}

func NewProgress(total int) Progress {
	p := Progress{make(chan error), make(chan struct{})}
	go func() {
		completed := 0
		errorCount := 0
		for err := range p.errs {
			if err == nil {
				completed += 1
			} else {
				errorCount += 1
				Warnf("%s", err)
			}
			Verbosef("%d of %d snapshots analyzed (%d errors)",
				completed, total, errorCount)
		}
		p.done <- struct{}{}
	}()
	return p
}

func (p Progress) JobDone(err error) {
	p.errs <- err
}

func (p Progress) Close() {
	close(p.errs)
	<-p.done
}
