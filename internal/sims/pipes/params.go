package pipes

import (
	"strconv"

	"tilewave/internal/core"
)

const maxStepsPerTick = 4096

// Parameters reports the grid, solver progress and tunables.
func (s *Sim) Parameters() core.ParameterSnapshot {
	state, steps, collapsed := "uninitialized", 0, 0
	if s.tm != nil {
		state = s.tm.State().String()
		steps = s.tm.Steps()
		collapsed = s.tm.Collapsed()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", s.cfg.Rows),
				intParam("cols", "Cols", s.cfg.Cols),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeText, Value: strconv.FormatInt(s.seed, 10)},
				intParam("variants", "Variants", s.tiles.Len()),
			},
		},
		{
			Name: "Solver",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeText, Value: state},
				intParam("steps", "Steps", steps),
				intParam("collapsed", "Collapsed", collapsed),
				intParam("steps_per_tick", "Steps per tick", s.cfg.StepsPerTick),
				{
					Key:   "restart_on_contradiction",
					Label: "Auto restart",
					Type:  core.ParamTypeBool,
					Value: strconv.FormatBool(s.cfg.RestartOnContradiction),
				},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "steps_per_tick", Label: "Steps per tick", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxStepsPerTick, HasMin: true, HasMax: true},
		{Key: "restart_on_contradiction", Label: "Auto restart", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates integer tunables.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "steps_per_tick":
		if value < 1 || value > maxStepsPerTick {
			return false
		}
		s.cfg.StepsPerTick = value
		return true
	}
	return false
}

// SetBoolParameter updates boolean tunables.
func (s *Sim) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "restart_on_contradiction":
		s.cfg.RestartOnContradiction = value
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
