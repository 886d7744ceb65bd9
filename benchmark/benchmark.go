package benchmark

import (
	"context"
	"fmt"
	"intent-lab/domain"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

type Classifier interface {
	Classify(ctx context.Context, utterance string) (domain.Prediction, error)
}

// Report sums up a benchmark: Good counts the test cases whose top intent
// was the expected one, over Runs repetitions of the whole test set.
type Report struct {
	Runs             int
	Total            int
	Good             int
	Accuracy         float64
	Elapsed          time.Duration
	PerUtterance     time.Duration
	UtterancesPerSec float64
	MemoryRSS        uint64
}

// Run classifies every test case runs times and measures accuracy and
// throughput. It stops at the first classification error.
func Run(ctx context.Context, classifier Classifier, cases []domain.TestCase, runs int) (Report, error) {
	if runs <= 0 {
		return Report{}, fmt.Errorf("runs must be positive, got %d", runs)
	}
	report := Report{Runs: runs}
	start := time.Now()
	for run := 0; run < runs; run++ {
		for _, tc := range cases {
			prediction, err := classifier.Classify(ctx, tc.Utterance)
			if err != nil {
				return report, fmt.Errorf("classify %q: %w", tc.Utterance, err)
			}
			report.Total++
			if prediction.Intent == tc.Intent {
				report.Good++
			}
		}
	}
	report.Elapsed = time.Since(start)

	if report.Total > 0 {
		report.Accuracy = float64(report.Good) / float64(report.Total)
		report.PerUtterance = report.Elapsed / time.Duration(report.Total)
		if report.Elapsed > 0 {
			report.UtterancesPerSec = float64(report.Total) / report.Elapsed.Seconds()
		}
	}
	report.MemoryRSS = residentMemory()
	return report, nil
}

// residentMemory returns the RSS of the current process, 0 when unknown.
func residentMemory() uint64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	info, err := p.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return info.RSS
}
