package registry

// CommandHandler is one command's per-stage execution protocol, per
// spec §4.7: BeginProcessing happens-before every ProcessRecord call,
// which happens-before EndProcessing. A fresh handler instance is
// created per stage task and never shared.
type CommandHandler interface {
	BeginProcessing(ctx *ExecContext) error
	ProcessRecord(ctx *ExecContext, record any) ([]any, error)
	EndProcessing(ctx *ExecContext) ([]any, error)
}

// BatchFunc is a command implementation that ignores the
// per-record streaming protocol and instead runs once against the
// fully buffered input, the way most of the shell's builtins behave.
type BatchFunc func(ctx *ExecContext, input []any) ([]any, error)

type batchHandler struct {
	fn   BatchFunc
	buf  []any
	saw  bool
}

func (b *batchHandler) BeginProcessing(*ExecContext) error { return nil }

func (b *batchHandler) ProcessRecord(_ *ExecContext, record any) ([]any, error) {
	b.saw = true
	if record != nil {
		b.buf = append(b.buf, record)
	}
	return nil, nil
}

func (b *batchHandler) EndProcessing(ctx *ExecContext) ([]any, error) {
	return b.fn(ctx, b.buf)
}

// Batch adapts a BatchFunc into a CommandHandler factory.
func Batch(fn BatchFunc) func() CommandHandler {
	return func() CommandHandler { return &batchHandler{fn: fn} }
}
