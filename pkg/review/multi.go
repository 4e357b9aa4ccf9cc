package review

import "github.com/suzuki-shunsuke/pep8-review/pkg/report"

// Reporter is a report.Sink which remembers whether a failure was reported.
type Reporter interface {
	report.Sink
	Failed() bool
}

// Multi sends the report to all sinks.
type Multi struct {
	sinks []Reporter
}

func NewMulti(sinks ...Reporter) *Multi {
	return &Multi{sinks: sinks}
}

func (m *Multi) Markdown(text string) {
	for _, s := range m.sinks {
		s.Markdown(text)
	}
}

func (m *Multi) Warn(text string) {
	for _, s := range m.sinks {
		s.Warn(text)
	}
}

func (m *Multi) Fail(text string) {
	for _, s := range m.sinks {
		s.Fail(text)
	}
}

func (m *Multi) Failed() bool {
	for _, s := range m.sinks {
		if s.Failed() {
			return true
		}
	}
	return false
}
