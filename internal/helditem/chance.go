package helditem

import "fmt"

// roll draws from the battle RNG unless another item already triggered this pass.
// No draw is taken once the shared flag is set, so replays stay aligned.
func (e *Engine) roll(p *Params, n, threshold int) bool {
	if p.Triggered == nil || *p.Triggered {
		return false
	}
	return e.rng.Intn(n) < threshold
}

func (e *Engine) triggerSurvive(def *Definition, p *Params) bool {
	*p.Triggered = true
	e.message(def, p.Holder, MsgKeySurviveDamage,
		fmt.Sprintf(MsgFmtSurviveDamage, p.Holder.Name(), def.DisplayName()))
	return true
}

// triggerBypassSpeed announces itself only when the holder is attacking
func (e *Engine) triggerBypassSpeed(def *Definition, p *Params) bool {
	*p.Triggered = true
	if p.FightCommand {
		e.message(def, p.Holder, MsgKeyBypassSpeed,
			fmt.Sprintf(MsgFmtBypassSpeed, p.Holder.Name(), def.DisplayName()))
	}
	return true
}
