package pool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsEveryTaskExactlyOnce(t *testing.T) {
	const n = 10_000

	p := NewWithWorkers(8)

	var ran atomic.Int64
	for i := 0; i < n; i++ {
		p.Spawn(func() {
			ran.Add(1)
		})
	}

	require.Eventually(t, func() bool {
		return ran.Load() == n
	}, 5*time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		return p.Outstanding() == 0
	}, time.Second, time.Millisecond)

	assert.EqualValues(t, n, ran.Load())
}

func TestPoolDefaultWorkerCountAtLeastOne(t *testing.T) {
	p := NewWithWorkers(0)
	assert.Equal(t, 1, p.NumWorkers)
}

func TestPoolOutstandingSettlesToZero(t *testing.T) {
	p := NewWithWorkers(4)

	done := make(chan struct{})
	p.Spawn(func() {
		close(done)
	})

	<-done
	require.Eventually(t, func() bool {
		return p.Outstanding() == 0
	}, time.Second, time.Millisecond)
}
