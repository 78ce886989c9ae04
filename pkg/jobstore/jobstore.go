package jobstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Реестр фоновых задач живет в памяти процесса: задачи ограничены по объему и
// перезапускаемы, поэтому потеря состояния при рестарте допустима. Интерфейс
// узкий, чтобы при необходимости подменить на персистентное хранилище.
type Registry interface {
	Create(kind string) *Job
	Get(id string) (*Job, bool)
	Complete(id string, result interface{})
	Fail(id string, reason string)
	EvictExpired() int
}

type JobState string

const (
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

type Job struct {
	ID        string
	Kind      string
	State     JobState
	Result    interface{}
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store struct {
	ttl  time.Duration
	mu   sync.RWMutex
	jobs map[string]*Job
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:  ttl,
		jobs: make(map[string]*Job),
	}
}

func (s *Store) Create(kind string) *Job {
	now := time.Now().UTC()
	job := &Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		State:     JobRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job

	return s.snapshot(job)
}

func (s *Store) Get(id string) (*Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, false
	}
	return s.snapshot(job), true
}

func (s *Store) Complete(id string, result interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.State = JobCompleted
	job.Result = result
	job.UpdatedAt = time.Now().UTC()
}

func (s *Store) Fail(id string, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.State = JobFailed
	job.Error = reason
	job.UpdatedAt = time.Now().UTC()
}

// EvictExpired удаляет завершенные задачи старше TTL. Выполняющиеся задачи не
// выселяются независимо от возраста.
func (s *Store) EvictExpired() int {
	deadline := time.Now().UTC().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, job := range s.jobs {
		if job.State == JobRunning {
			continue
		}
		if job.UpdatedAt.Before(deadline) {
			delete(s.jobs, id)
			evicted++
		}
	}
	return evicted
}

// snapshot отдает копию, чтобы читатели не видели последующих мутаций.
func (s *Store) snapshot(job *Job) *Job {
	c := *job
	return &c
}
