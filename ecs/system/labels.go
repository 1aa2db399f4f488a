package system

import (
	"strconv"

	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/component"
	"github.com/forgeplay/scenerun/scene"
)

// LabelSystem keeps each gravity zone's strength readout current. It runs
// first in the tick so labels always show the strength the force pass is
// about to use, and re-reads the source object's gravityStrength property
// so editor-side changes show up live.
type LabelSystem struct{}

func NewLabelSystem() *LabelSystem {
	return &LabelSystem{}
}

func (ls *LabelSystem) Update(w *ecs.World) {
	if ls == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.GravityZoneComponent, component.LabelComponent, func(e ecs.Entity, zone *component.GravityZone, label *component.Label) {
		if !zone.FromBehavior {
			if ref, ok := ecs.Get(w, e, component.ObjectRefComponent); ok && ref.Object != nil {
				zone.Strength = scene.ZoneStrength(ref.Object, nil)
			}
		}
		s := zone.Strength
		if s < 0 {
			s = -s
		}
		label.Text = strconv.FormatFloat(s, 'f', -1, 64)
	})
}
