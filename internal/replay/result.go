package replay

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Result is the transcript of one scenario run
type Result struct {
	Scenario    string        `json:"scenario"`
	Seed        string        `json:"seed"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	DurationMS  int64         `json:"duration_ms"`
	Steps       []StepResult  `json:"steps"`
	Messages    []string      `json:"messages"`
	ItemsLost   int           `json:"items_lost"`
	Draws       int           `json:"draws"`
	Final       []HolderState `json:"final"`
}

// StepResult is what one step did
type StepResult struct {
	Name       string            `json:"name"`
	Index      int               `json:"index"`
	Action     ActionType        `json:"action"`
	Holder     string            `json:"holder"`
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
	Applied    bool              `json:"applied"`
	Value      *float64          `json:"value,omitempty"`
	Count      *int              `json:"count,omitempty"`
	Triggered  bool              `json:"triggered"`
	BaseStats  []int             `json:"base_stats,omitempty"`
	Messages   []string          `json:"messages,omitempty"`
	Assertions []AssertionResult `json:"assertions,omitempty"`
}

// AssertionResult is the outcome of one assertion
type AssertionResult struct {
	Type     AssertionType `json:"type"`
	Path     string        `json:"path"`
	Expected interface{}   `json:"expected,omitempty"`
	Actual   interface{}   `json:"actual,omitempty"`
	Passed   bool          `json:"passed"`
	Reason   string        `json:"reason,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// HolderState is a holder after the last step
type HolderState struct {
	ID     string      `json:"id"`
	HP     int         `json:"hp"`
	Status string      `json:"status"`
	Money  int         `json:"money"`
	Items  []ItemState `json:"items"`
}

// ItemState is one stack in ledger order
type ItemState struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func newResult(name, seed string) *Result {
	return &Result{
		Scenario:  name,
		Seed:      seed,
		Success:   true,
		StartedAt: time.Now(),
		Steps:     make([]StepResult, 0),
	}
}

func newStepResult(step Step, index int) *StepResult {
	return &StepResult{
		Name:    step.Name,
		Index:   index,
		Action:  step.Action,
		Holder:  step.Holder,
		Success: true,
	}
}

// Complete stamps the completion time
func (r *Result) Complete() {
	r.CompletedAt = time.Now()
	r.DurationMS = r.CompletedAt.Sub(r.StartedAt).Milliseconds()
}

// AddStepResult appends step and clears Success when it failed
func (r *Result) AddStepResult(step StepResult) {
	r.Steps = append(r.Steps, step)
	if !step.Success {
		r.Success = false
	}
}

// SetError marks the run as failed
func (r *Result) SetError(err error) {
	r.Success = false
	r.Error = err.Error()
}

// SetError marks the step as failed
func (s *StepResult) SetError(err error) {
	s.Success = false
	s.Error = err.Error()
}

// AddAssertionResult appends a and clears Success when it failed
func (s *StepResult) AddAssertionResult(a AssertionResult) {
	s.Assertions = append(s.Assertions, a)
	if !a.Passed {
		s.Success = false
	}
}

// FailedAssertions counts failed assertions across all steps
func (r *Result) FailedAssertions() int {
	failed := 0
	for _, step := range r.Steps {
		for _, a := range step.Assertions {
			if !a.Passed {
				failed++
			}
		}
	}
	return failed
}

// ToPrettyJSON renders the result as indented JSON
func (r *Result) ToPrettyJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Lines renders the deterministic part of the transcript, one event per line.
// Timing and battle ids are left out so two runs with the same seed render identically.
func (r *Result) Lines() []string {
	lines := []string{"seed " + r.Seed}
	for _, s := range r.Steps {
		var b strings.Builder
		fmt.Fprintf(&b, "step %d %s holder=%s", s.Index, s.Action, s.Holder)
		if s.Action == ActionTrigger {
			fmt.Fprintf(&b, " applied=%t triggered=%t", s.Applied, s.Triggered)
			if s.Value != nil {
				b.WriteString(" value=" + strconv.FormatFloat(*s.Value, 'g', -1, 64))
			}
			if s.Count != nil {
				b.WriteString(" count=" + strconv.Itoa(*s.Count))
			}
			if s.BaseStats != nil {
				fmt.Fprintf(&b, " base=%v", s.BaseStats)
			}
		}
		if s.Error != "" {
			b.WriteString(" error=" + s.Error)
		}
		lines = append(lines, b.String())
		for _, m := range s.Messages {
			lines = append(lines, "  > "+m)
		}
	}
	for _, h := range r.Final {
		items := make([]string, len(h.Items))
		for i, it := range h.Items {
			items[i] = fmt.Sprintf("%s x%d", it.ID, it.Count)
		}
		lines = append(lines, fmt.Sprintf("final %s hp=%d status=%s money=%d items=[%s]",
			h.ID, h.HP, h.Status, h.Money, strings.Join(items, ", ")))
	}
	lines = append(lines, fmt.Sprintf("draws %d lost %d", r.Draws, r.ItemsLost))
	return lines
}

// Equal reports whether two runs rendered the same transcript
func (r *Result) Equal(other *Result) bool {
	return slices.Equal(r.Lines(), other.Lines())
}

// Diff returns the first line where the transcripts differ, or ok=false when they match
func (r *Result) Diff(other *Result) (line int, a, b string, ok bool) {
	la, lb := r.Lines(), other.Lines()
	for i := 0; i < max(len(la), len(lb)); i++ {
		var x, y string
		if i < len(la) {
			x = la[i]
		}
		if i < len(lb) {
			y = lb[i]
		}
		if x != y {
			return i, x, y, true
		}
	}
	return 0, "", "", false
}
