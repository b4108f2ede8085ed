package command

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/meenmo/tvm/cmd/tvm/internal/config"
)

// Env is passed to every command through subcommands' Execute arguments.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Config *config.Config
	Logger *zap.Logger
}

type identified interface {
	id() string
}

// jsonCommand reads one JSON object (or an array of them) and writes the
// computed result(s) in the same shape.
type jsonCommand[In identified, Out any] struct {
	name     string
	synopsis string
	fields   string
	compute  func(env *Env, log *zap.Logger, in In) (Out, error)

	input string
}

func (c *jsonCommand[In, Out]) Name() string     { return c.name }
func (c *jsonCommand[In, Out]) Synopsis() string { return c.synopsis }
func (c *jsonCommand[In, Out]) Usage() string {
	return fmt.Sprintf(`tvm %[1]s [-input <path>] < input.json

  %[2]s
  Input fields: %[3]s
  An array of inputs yields an array of outputs.
`, c.name, c.synopsis, c.fields)
}

func (c *jsonCommand[In, Out]) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", "", "JSON input path (reads stdin if omitted)")
}

func (c *jsonCommand[In, Out]) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env, ok := envFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}
	log := env.Logger.With(zap.String("command", c.name))

	path := strings.TrimSpace(c.input)
	if path == "" && isTerminal(env.Stdin) {
		f.Usage()
		return subcommands.ExitUsageError
	}

	raw, err := readInput(env.Stdin, path)
	if err != nil {
		return writeFailure(env.Stdout, fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs[In](raw)
	if err != nil {
		return writeFailure(env.Stdout, fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]any, 0, len(inputs))
	for _, in := range inputs {
		log.Debug("computing", zap.String("task_id", in.id()), zap.Any("input", in))
		out, err := c.compute(env, log, in)
		if err != nil {
			hadError = true
			log.Debug("input rejected", zap.String("task_id", in.id()), zap.Error(err))
			outputs = append(outputs, failure{TaskID: in.id(), Error: err.Error()})
			continue
		}
		outputs = append(outputs, out)
	}

	var b []byte
	if isArray {
		b, err = json.Marshal(outputs)
	} else {
		b, err = json.Marshal(outputs[0])
	}
	if err != nil {
		return writeFailure(env.Stdout, fmt.Sprintf("encode output: %v", err))
	}
	fmt.Fprintln(env.Stdout, string(b))

	if hadError {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func envFrom(args []interface{}) (*Env, bool) {
	if len(args) == 0 {
		return nil, false
	}
	env, ok := args[0].(*Env)
	return env, ok && env != nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) != 0
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func parseInputs[In any](raw []byte) ([]In, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []In
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input In
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []In{input}, false, nil
}

func writeFailure(w io.Writer, msg string) subcommands.ExitStatus {
	b, _ := json.Marshal(failure{Error: msg})
	fmt.Fprintln(w, string(b))
	return subcommands.ExitFailure
}

// warnIfNotFinite logs results that are NaN or infinite; they are valid
// outputs but usually mean the inputs did not describe a reachable state.
func warnIfNotFinite(log *zap.Logger, field string, v Number, in identified) {
	if !v.IsFinite() {
		log.Warn("result is not finite",
			zap.String("task_id", in.id()),
			zap.String("field", field),
			zap.Float64("value", float64(v)),
		)
	}
}
