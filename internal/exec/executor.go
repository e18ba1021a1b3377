// Package exec runs parsed statements: it wires each statement's
// stages into a pipeline of concurrent stage tasks, following the
// producer/consumer, bounded-queue pattern the teacher's agent
// dispatcher uses for its own worker pool, generalized here to an
// arbitrary-length pipeline instead of a fixed fan-out batch.
package exec

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/arbsh/arbsh/internal/binder"
	"github.com/arbsh/arbsh/internal/command"
	"github.com/arbsh/arbsh/internal/metrics"
	"github.com/arbsh/arbsh/internal/pipeline"
	"github.com/arbsh/arbsh/internal/registry"
	"github.com/arbsh/arbsh/internal/session"
)

// Executor runs ParseResult statements against a Registry and
// SessionState.
type Executor struct {
	registry *registry.Registry
	session  *session.State
	logger   *zap.Logger

	Stdout *bufio.Writer
	Stderr *bufio.Writer

	QueueCapacity int
}

// New builds an Executor. A nil logger falls back to zap.NewNop().
func New(reg *registry.Registry, sess *session.State, logger *zap.Logger, stdout, stderr *bufio.Writer) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		registry:      reg,
		session:       sess,
		logger:        logger,
		Stdout:        stdout,
		Stderr:        stderr,
		QueueCapacity: pipeline.DefaultCapacity,
	}
}

// RunAll runs every statement in order, sequentially, per spec §4.7's
// "statements execute strictly sequentially" rule.
func (e *Executor) RunAll(statements []command.Statement) error {
	for _, stmt := range statements {
		if err := e.RunStatement(stmt); err != nil {
			fmt.Fprintf(e.Stderr, "error: %v\n", err)
			e.Stderr.Flush()
		}
	}
	return nil
}

// RunStatement executes one statement's pipeline to completion and
// distributes the final stage's output to stdout/stderr/redirection
// files, per the per-statement protocol of spec §4.7.
func (e *Executor) RunStatement(stmt command.Statement) error {
	if len(stmt.Stages) == 0 {
		return nil
	}

	descs := make([]registry.Descriptor, len(stmt.Stages))
	for i, stage := range stmt.Stages {
		d, ok := e.registry.Lookup(stage.CommandName)
		if !ok {
			return fmt.Errorf("command not found: %s", stage.CommandName)
		}
		descs[i] = d
	}

	queues := make([]*pipeline.Queue, len(stmt.Stages))
	for i := range queues {
		queues[i] = pipeline.NewQueue(e.QueueCapacity)
		queues[i].SetLogger(e.logger)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(stmt.Stages))

	var inputQueue *pipeline.Queue
	if stmt.Stages[0].InputRedirectPath != "" {
		inputQueue = pipeline.NewQueue(e.QueueCapacity)
		inputQueue.SetLogger(e.logger)
		wg.Add(1)
		go e.runInputProducer(stmt.Stages[0].InputRedirectPath, inputQueue, &wg)
	}

	for i, stage := range stmt.Stages {
		var in *pipeline.Queue
		if i > 0 {
			in = queues[i-1]
		} else {
			in = inputQueue
		}
		wg.Add(1)
		go e.runStage(stage, descs[i], in, queues[i], &errs[i], &wg)
	}

	wg.Wait()

	var faulted []error
	for _, err := range errs {
		if err != nil {
			faulted = append(faulted, err)
		}
	}

	last := queues[len(queues)-1]
	e.distribute(stmt.Stages[len(stmt.Stages)-1], last)

	if len(faulted) > 0 {
		msgs := make([]string, len(faulted))
		for i, err := range faulted {
			msgs[i] = err.Error()
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

func (e *Executor) runInputProducer(path string, out *pipeline.Queue, wg *sync.WaitGroup) {
	defer wg.Done()
	f, err := os.Open(path)
	if err != nil {
		out.Put(pipeline.Object{IsError: true, Err: fmt.Errorf("cannot open %s: %w", path, err)})
		out.Close()
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		out.Put(pipeline.Object{Value: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		out.Put(pipeline.Object{IsError: true, Err: err})
	}
	out.Close()
}

func (e *Executor) runStage(stage command.ParsedCommand, desc registry.Descriptor, in, out *pipeline.Queue, errOut *error, wg *sync.WaitGroup) {
	defer wg.Done()
	defer out.Close()

	handler := desc.NewHandler()

	bound, bindErr := binder.Bind(desc.Params, stage)
	for _, w := range warningsOf(bound) {
		e.logger.Warn("binding warning",
			zap.String("session", e.session.ID()),
			zap.String("command", stage.CommandName),
			zap.String("warning", w))
	}

	ctx := &registry.ExecContext{
		Session:    e.session,
		Arguments:  stage.Arguments,
		Parameters: stage.Parameters,
		Bound:      bound,
		Stdout:     e.Stdout,
		Stderr:     e.Stderr,
		Eval:       e.evalSubExpression,
	}

	if bindErr != nil {
		*errOut = bindErr
		out.Put(pipeline.Object{IsError: true, Err: bindErr})
		return
	}

	stageStart := time.Now()
	if err := handler.BeginProcessing(ctx); err != nil {
		*errOut = err
		out.Put(pipeline.Object{IsError: true, Err: err})
		return
	}

	emit := func(items []any) {
		metrics.PipelineObjectsTotal.WithLabelValues(stage.CommandName).Add(float64(len(items)))
		for _, item := range items {
			out.Put(pipeline.Object{Value: item})
		}
	}

	if in == nil {
		bound.BindPipelineObject(desc.Params, nil)
		items, err := handler.ProcessRecord(ctx, nil)
		if err != nil {
			*errOut = err
			out.Put(pipeline.Object{IsError: true, Err: err})
			return
		}
		emit(items)
	} else {
		for {
			obj, ok := in.Take()
			if !ok {
				break
			}
			if obj.IsError {
				out.Put(obj)
				continue
			}
			bound.BindPipelineObject(desc.Params, obj.Value)
			items, err := handler.ProcessRecord(ctx, obj.Value)
			if err != nil {
				*errOut = err
				out.Put(pipeline.Object{IsError: true, Err: err})
				continue
			}
			emit(items)
		}
	}

	items, err := handler.EndProcessing(ctx)
	metrics.StageDurationSeconds.WithLabelValues(stage.CommandName).Observe(time.Since(stageStart).Seconds())
	if err != nil {
		*errOut = err
		out.Put(pipeline.Object{IsError: true, Err: err})
		return
	}
	emit(items)
}

// evalSubExpression runs a nested $(...) body and flattens its last
// statement's output into a single object slice, for builtins that
// resolve sub-expression arguments through ExecContext.Eval.
func (e *Executor) evalSubExpression(stmts []command.Statement) ([]any, error) {
	if len(stmts) == 0 {
		return nil, nil
	}
	var out []any
	for _, stmt := range stmts {
		objs, err := e.captureStatement(stmt)
		if err != nil {
			return nil, err
		}
		out = objs
	}
	return out, nil
}

// captureStatement runs a statement's pipeline and returns the final
// stage's output objects directly, instead of distributing them to
// sinks, for use by sub-expression evaluation.
func (e *Executor) captureStatement(stmt command.Statement) ([]any, error) {
	if len(stmt.Stages) == 0 {
		return nil, nil
	}
	descs := make([]registry.Descriptor, len(stmt.Stages))
	for i, stage := range stmt.Stages {
		d, ok := e.registry.Lookup(stage.CommandName)
		if !ok {
			return nil, fmt.Errorf("command not found: %s", stage.CommandName)
		}
		descs[i] = d
	}
	queues := make([]*pipeline.Queue, len(stmt.Stages))
	for i := range queues {
		queues[i] = pipeline.NewQueue(e.QueueCapacity)
		queues[i].SetLogger(e.logger)
	}
	var wg sync.WaitGroup
	errs := make([]error, len(stmt.Stages))

	var inputQueue *pipeline.Queue
	if stmt.Stages[0].InputRedirectPath != "" {
		inputQueue = pipeline.NewQueue(e.QueueCapacity)
		inputQueue.SetLogger(e.logger)
		wg.Add(1)
		go e.runInputProducer(stmt.Stages[0].InputRedirectPath, inputQueue, &wg)
	}

	for i, stage := range stmt.Stages {
		var in *pipeline.Queue
		if i > 0 {
			in = queues[i-1]
		} else {
			in = inputQueue
		}
		wg.Add(1)
		go e.runStage(stage, descs[i], in, queues[i], &errs[i], &wg)
	}
	wg.Wait()

	var out []any
	last := queues[len(queues)-1]
	for {
		obj, ok := last.Take()
		if !ok {
			break
		}
		if !obj.IsError {
			out = append(out, obj.Value)
		}
	}
	for _, err := range errs {
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

func warningsOf(b *binder.Bound) []string {
	if b == nil {
		return nil
	}
	return b.Warnings
}

// SortedNames returns the registry's primary command names sorted, for
// presenting the command set deterministically.
func SortedNames(r *registry.Registry) []string {
	all := r.All()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	sort.Strings(names)
	return names
}
