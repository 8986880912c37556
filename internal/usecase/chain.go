package usecase

import (
	"context"
	"fmt"
)

// Chain runs named stages in order and stops at the first failure. Later
// stages may read what earlier stages wrote, so there is no parallelism.
type Chain struct {
	stages []Stage
}

type Stage struct {
	Name string
	Fn   func(context.Context) error
}

// StageError reports which stage failed.
type StageError struct {
	Stage string
	Index int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage '%s' failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func NewChain() *Chain {
	return &Chain{stages: []Stage{}}
}

func (c *Chain) AddStage(name string, fn func(context.Context) error) *Chain {
	c.stages = append(c.stages, Stage{Name: name, Fn: fn})
	return c
}

func (c *Chain) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name
	}
	return names
}

func (c *Chain) Execute(ctx context.Context) error {
	for i, stage := range c.stages {
		if err := ctx.Err(); err != nil {
			return &StageError{Stage: stage.Name, Index: i, Err: err}
		}
		if err := stage.Fn(ctx); err != nil {
			return &StageError{Stage: stage.Name, Index: i, Err: err}
		}
	}
	return nil
}
