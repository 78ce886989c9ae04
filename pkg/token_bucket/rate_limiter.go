package token_bucket

import (
	"sync"
	"time"
)

// Limiter — контракт для middleware: один вызов Allow на входящий запрос.
type Limiter interface {
	Allow() bool
}

// TokenBucket — классический token bucket под мьютексом.
// Емкость задает допустимый burst, ratePerSec — скорость восстановления.
type TokenBucket struct {
	size       int
	available  int
	ratePerSec float64
	lastTick   time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		size:       capacity,
		available:  capacity,
		ratePerSec: refillRate,
		lastTick:   time.Now(),
	}
}

// Allow списывает один токен. false — запрос надо отклонить.
func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.available <= 0 {
		return false
	}
	t.available--
	return true
}

// refill добавляет целое число накопившихся токенов. lastTick сдвигается
// только когда хотя бы один токен начислен, иначе дробный остаток времени
// терялся бы на частых вызовах.
func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastTick).Seconds()
	if elapsed <= 0 {
		return
	}

	earned := int(elapsed * t.ratePerSec)
	if earned == 0 {
		return
	}

	t.available += earned
	if t.available > t.size {
		t.available = t.size
	}
	t.lastTick = now
}
