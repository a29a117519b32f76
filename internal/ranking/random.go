package ranking

import (
	"math/rand"
	"sync"
	"time"
)

// Rand 是打分抖动与洗牌使用的随机源，*rand.Rand 满足该接口。
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand 返回以当前时间为种子、可并发使用的随机源。
func NewRand() Rand {
	return NewLockedRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewLockedRand 为 *rand.Rand 加锁，使其可在多个请求间共享。
func NewLockedRand(r *rand.Rand) Rand {
	return &lockedRand{r: r}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
