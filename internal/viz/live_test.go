package viz

import (
	"errors"
	"testing"

	"github.com/san-kum/growthsim/internal/models"
)

// lockedModel reports a parameter it then refuses to change.
type lockedModel struct {
	value float64
}

func (l *lockedModel) Step(k float64) float64 { return k }
func (l *lockedModel) Name() string           { return "locked" }

func (l *lockedModel) GetParams() map[string]float64 {
	return map[string]float64{"rate": l.value}
}

func (l *lockedModel) SetParam(name string, value float64) error {
	return errors.New("read-only param")
}

func TestAdjustParamUpdatesModel(t *testing.T) {
	solow := models.NewSolow()
	m := NewModel(solow, 2.0, 150, 30)

	before := m.params[m.paramKeys[m.selected]]
	m.adjustParam(1.05)

	key := m.paramKeys[m.selected]
	if m.params[key] == before {
		t.Error("displayed param not updated")
	}
	if solow.GetParams()[key] != m.params[key] {
		t.Errorf("model param %q out of sync with display", key)
	}
}

func TestAdjustParamRejectedKeepsDisplay(t *testing.T) {
	m := NewModel(&lockedModel{value: 0.5}, 1.0, 10, 30)

	m.adjustParam(1.05)

	if m.params["rate"] != 0.5 {
		t.Errorf("display changed despite rejected SetParam: %f", m.params["rate"])
	}
}

func TestStepStopsOnInvalidCapital(t *testing.T) {
	// Negative capital with fractional alpha produces NaN; the view
	// must pause instead of appending poison to the history.
	m := NewModel(models.NewSolow(), -1.0, 10, 30)

	m.step()

	if m.running {
		t.Error("expected run to pause on invalid capital")
	}
	if len(m.history) != 1 {
		t.Errorf("history grew past the invalid step: %d entries", len(m.history))
	}
}
