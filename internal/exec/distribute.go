package exec

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/arbsh/arbsh/internal/command"
	"github.com/arbsh/arbsh/internal/pipeline"
)

// distribute drains a statement's final stage queue, routing each
// item to the console or a redirection file per spec §4.7's
// redirection distribution rule.
func (e *Executor) distribute(stage command.ParsedCommand, q *pipeline.Queue) {
	mergeErrToOut, mergeOutToErr := false, false
	var fileTarget [3]string // index 1 = stdout target, 2 = stderr target
	var appendMode [3]bool

	for _, r := range stage.Redirections {
		switch {
		case r.TargetType == command.StreamHandle && r.SourceStreamHandle == 2 && r.Target == "1":
			mergeErrToOut = true
		case r.TargetType == command.StreamHandle && r.SourceStreamHandle == 1 && r.Target == "2":
			mergeOutToErr = true
		case r.TargetType == command.FilePath:
			fileTarget[r.SourceStreamHandle] = r.Target
			appendMode[r.SourceStreamHandle] = r.Append
		}
	}

	var files [3]*os.File
	defer func() {
		for _, f := range files {
			if f != nil {
				f.Close()
			}
		}
	}()

	writeTo := func(stream int, text string) {
		if fileTarget[stream] != "" {
			if files[stream] == nil {
				f, err := openRedirectFile(fileTarget[stream], appendMode[stream])
				if err != nil {
					e.logger.Error("redirection file open failed, falling back to console",
						zap.String("path", fileTarget[stream]), zap.Error(err))
					fileTarget[stream] = ""
				} else {
					files[stream] = f
				}
			}
			if files[stream] != nil {
				if _, err := fmt.Fprintln(files[stream], text); err != nil {
					e.logger.Error("redirection file write failed, falling back to console",
						zap.String("path", fileTarget[stream]), zap.Error(err))
					files[stream].Close()
					files[stream] = nil
					fileTarget[stream] = ""
				} else {
					return
				}
			}
		}
		if stream == 2 {
			fmt.Fprintln(e.Stderr, text)
			e.Stderr.Flush()
		} else {
			fmt.Fprintln(e.Stdout, text)
			e.Stdout.Flush()
		}
	}

	for {
		obj, ok := q.Take()
		if !ok {
			break
		}
		stream := 1
		text := formatObject(obj)
		if obj.IsError {
			stream = 2
			if mergeErrToOut {
				stream = 1
			}
		} else if mergeOutToErr {
			stream = 2
		}
		writeTo(stream, text)
	}
}

func openRedirectFile(path string, appendMode bool) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0o644)
}

func formatObject(obj pipeline.Object) string {
	if obj.IsError {
		if obj.Err != nil {
			return "error: " + obj.Err.Error()
		}
		return "error"
	}
	if s, ok := obj.Value.(string); ok {
		return s
	}
	if s, ok := obj.Value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", obj.Value)
}
