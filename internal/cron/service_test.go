package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubLock struct {
	locked   bool
	acquires int
	releases int
	err      error
}

func (s *stubLock) Acquire(ctx context.Context) (bool, error) {
	s.acquires++
	if s.err != nil {
		return false, s.err
	}
	return s.locked, nil
}

func (s *stubLock) Release(ctx context.Context) error {
	s.releases++
	return nil
}

type recordingJob struct {
	name string
	runs int
	err  error
}

func (j *recordingJob) Name() string { return j.name }

func (j *recordingJob) Run(ctx context.Context) error {
	j.runs++
	return j.err
}

func TestRunCycleExecutesJobsWhenLocked(t *testing.T) {
	lock := &stubLock{locked: true}
	jobA := &recordingJob{name: "a"}
	jobB := &recordingJob{name: "b", err: errors.New("boom")}

	svc, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(jobA, jobB),
		Lock:     lock,
		Interval: time.Hour,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	if err := svc.runCycle(context.Background()); err != nil {
		t.Fatalf("cycle failed: %v", err)
	}
	if jobA.runs != 1 || jobB.runs != 1 {
		t.Fatalf("expected both jobs to run once, got %d/%d", jobA.runs, jobB.runs)
	}
	if lock.releases != 1 {
		t.Fatalf("expected lock released, got %d", lock.releases)
	}
}

func TestRunCycleSkipsWhenLockHeldElsewhere(t *testing.T) {
	lock := &stubLock{locked: false}
	job := &recordingJob{name: "a"}

	svc, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(job),
		Lock:     lock,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	if err := svc.runCycle(context.Background()); err != nil {
		t.Fatalf("cycle failed: %v", err)
	}
	if job.runs != 0 {
		t.Fatal("job must not run without the lock")
	}
	if lock.releases != 0 {
		t.Fatal("lock must not be released when never acquired")
	}
}

func TestNewServiceValidatesParams(t *testing.T) {
	if _, err := NewService(ServiceParams{Lock: &stubLock{}}); err == nil {
		t.Fatal("expected missing logger to fail")
	}
	if _, err := NewService(ServiceParams{Logger: testLogger()}); err == nil {
		t.Fatal("expected missing lock to fail")
	}
}
