package command

import (
	"encoding/json"
	"math"
)

// Number is a float64 that survives JSON encoding when it is NaN or ±Inf,
// which are written as the strings "NaN", "+Inf" and "-Inf".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

// IsFinite reports whether n is neither NaN nor infinite.
func (n Number) IsFinite() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// task carries the optional caller-supplied identifier echoed in every output.
type task struct {
	TaskID string `json:"task_id,omitempty"`
}

func (t task) id() string { return t.TaskID }

type failure struct {
	TaskID string `json:"task_id,omitempty"`
	Error  string `json:"error"`
}
