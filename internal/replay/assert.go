package replay

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/osse101/BattleItems_Go/internal/domain"
)

func stepOutput(sr *StepResult) map[string]interface{} {
	out := map[string]interface{}{
		OutputApplied:   sr.Applied,
		OutputTriggered: sr.Triggered,
		OutputMessages:  len(sr.Messages),
		OutputText:      strings.Join(sr.Messages, "\n"),
	}
	if sr.Value != nil {
		out[OutputValue] = *sr.Value
	}
	if sr.Count != nil {
		out[OutputCount] = *sr.Count
	}
	return out
}

// checkAssertion evaluates a against the step output, falling back to holder state
func checkAssertion(a Assertion, output map[string]interface{}, b *battle) AssertionResult {
	result := AssertionResult{
		Type:     a.Type,
		Path:     a.Path,
		Expected: a.Value,
		Reason:   a.Reason,
		Passed:   true,
	}

	actual, found := output[a.Path]
	if !found {
		actual, found = b.lookup(a.Path)
	}
	if !found {
		result.Passed = false
		result.Error = fmt.Sprintf(ErrFmtUnknownPath, a.Path)
		return result
	}
	result.Actual = actual

	switch a.Type {
	case AssertEquals:
		result.Passed = valuesEqual(actual, a.Value)
		if !result.Passed {
			result.Error = fmt.Sprintf("expected %v, got %v", a.Value, actual)
		}
	case AssertGreaterThan, AssertLessThan:
		x, xOk := toFloat64(actual)
		y, yOk := toFloat64(a.Value)
		if !xOk || !yOk {
			result.Passed = false
			result.Error = fmt.Sprintf("cannot compare non-numeric values: %v, %v", actual, a.Value)
			break
		}
		if a.Type == AssertGreaterThan {
			result.Passed = x > y
		} else {
			result.Passed = x < y
		}
		if !result.Passed {
			result.Error = fmt.Sprintf("%v is not %s %v", actual, a.Type, a.Value)
		}
	case AssertContains:
		str, ok := actual.(string)
		expected, expectedOk := a.Value.(string)
		result.Passed = ok && expectedOk && strings.Contains(str, expected)
		if !result.Passed {
			result.Error = fmt.Sprintf("'%v' does not contain '%v'", actual, a.Value)
		}
	case AssertTrue, AssertFalse:
		v, ok := actual.(bool)
		result.Passed = ok && v == (a.Type == AssertTrue)
		if !result.Passed {
			result.Error = fmt.Sprintf("expected %s, got %v", a.Type, actual)
		}
	default:
		result.Passed = false
		result.Error = fmt.Sprintf("unknown assertion type: %s", a.Type)
	}
	return result
}

// lookup resolves a holder state path such as "hp.player" or "stack.enemy.LEFTOVERS"
func (b *battle) lookup(path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return nil, false
	}
	c, ok := b.holders[parts[1]]
	if !ok {
		return nil, false
	}

	switch {
	case parts[0] == PathHP && len(parts) == 2:
		return c.HP(), true
	case parts[0] == PathStatus && len(parts) == 2:
		return string(c.Status()), true
	case parts[0] == PathMoney && len(parts) == 2:
		return b.money[parts[1]], true
	case parts[0] == PathStage && len(parts) == 3:
		stat, err := domain.ParseStat(parts[2])
		if err != nil {
			return nil, false
		}
		return c.StatStage(stat), true
	case parts[0] == PathStack && len(parts) == 3:
		id, err := domain.ParseHeldItemID(parts[2])
		if err != nil {
			return nil, false
		}
		return c.Ledger().Stack(id), true
	}
	return nil, false
}

func valuesEqual(a, b interface{}) bool {
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		return aNum == bNum
	}
	return reflect.DeepEqual(a, b)
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
