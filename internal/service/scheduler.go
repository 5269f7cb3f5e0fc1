package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/anthropics/telegram-relay-bot/internal/biz/usecase"
)

// ScheduleConfig holds the posting cadence parameters
type ScheduleConfig struct {
	MinHour int // active window lower bound, exclusive
	MaxHour int // active window upper bound, exclusive

	MinPostCount int
	MaxPostCount int

	PostInterval       time.Duration
	PostIntervalOffset time.Duration // random extra delay, up to this much

	BasePostChance        float64
	BasePostChanceBacklog int // backlog size at which chance equals BasePostChance

	TimezoneOffsetHours int
}

// PostScheduler is a self-rescheduling timer that decides whether, when and
// how many submissions to republish. Exactly one pending tick exists at a
// time; manual triggers cancel and replace it.
type PostScheduler struct {
	publishUC *usecase.PublishUsecase
	cfg       ScheduleConfig

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64 // bumped on every supersession; stale ticks bail out
	stopped bool
	rng     *rand.Rand
	now     func() time.Time
}

// NewPostScheduler creates a new post scheduler
func NewPostScheduler(publishUC *usecase.PublishUsecase, cfg ScheduleConfig) *PostScheduler {
	return &PostScheduler{
		publishUC: publishUC,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
}

// Start schedules the first tick
func (s *PostScheduler) Start() {
	s.scheduleNext()
	fmt.Printf("[Scheduler] Started, interval %v + up to %v, window %d-%d\n",
		s.cfg.PostInterval, s.cfg.PostIntervalOffset, s.cfg.MinHour, s.cfg.MaxHour)
}

// Stop cancels the pending tick
func (s *PostScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
	}
	fmt.Println("[Scheduler] Stopped")
}

// TriggerNow cancels the pending tick, publishes count submissions
// immediately and reschedules. Returns the number actually published.
func (s *PostScheduler) TriggerNow(ctx context.Context, count int) (int, error) {
	s.mu.Lock()
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	published, err := s.publishUC.PublishBatch(ctx, count)
	s.scheduleNext()
	return published, err
}

// scheduleNext arms the next tick with a jittered delay
func (s *PostScheduler) scheduleNext() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.gen++
	gen := s.gen
	delay := s.cfg.PostInterval + time.Duration(s.rng.Float64()*float64(s.cfg.PostIntervalOffset))
	s.timer = time.AfterFunc(delay, func() { s.onTick(gen) })
}

// onTick runs one scheduled tick. The next tick is armed no matter what
// happened during this one.
func (s *PostScheduler) onTick(gen uint64) {
	s.mu.Lock()
	if s.stopped || gen != s.gen {
		// Superseded by a manual trigger or shutdown
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.tick()
	s.scheduleNext()
}

// tick decides whether to publish and how much
func (s *PostScheduler) tick() {
	ctx := context.Background()

	backlog, err := s.publishUC.Backlog(ctx)
	if err != nil {
		fmt.Printf("[Scheduler] Failed to read backlog: %v\n", err)
		return
	}

	chance := PostChance(backlog, s.cfg.BasePostChance, s.cfg.BasePostChanceBacklog)
	hour := s.localHour()

	if !(s.cfg.MinHour < hour && hour < s.cfg.MaxHour) {
		return
	}
	if s.randFloat() >= chance {
		return
	}

	span := float64(s.cfg.MaxPostCount - s.cfg.MinPostCount)
	count := int(math.Round(float64(s.cfg.MinPostCount) + s.randFloat()*span))

	published, err := s.publishUC.PublishBatch(ctx, count)
	if err != nil {
		fmt.Printf("[Scheduler] Publish error after %d of %d: %v\n", published, count, err)
		return
	}
	fmt.Printf("[Scheduler] Published %d of %d (backlog %d, chance %.2f)\n",
		published, count, backlog, chance)
}

// PostChance computes the backlog-scaled posting probability, capped at 1
func PostChance(backlog int, base float64, norm int) float64 {
	if norm <= 0 {
		return 0
	}
	chance := base * float64(backlog) / float64(norm)
	if chance > 1 {
		return 1
	}
	return chance
}

// localHour is the wall-clock hour at the configured locale, UTC plus offset
func (s *PostScheduler) localHour() int {
	h := (s.now().UTC().Hour() + s.cfg.TimezoneOffsetHours) % 24
	if h < 0 {
		h += 24
	}
	return h
}

func (s *PostScheduler) randFloat() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
