package scene

import "testing"

const sampleScene = `
id: scene-1
name: Sample
objects:
  - id: player-1
    type: player
    position: {x: 100, y: 200}
    rotation: 45
    behaviors:
      - id: b1
        type: physics
        parameters:
          mass: 2
          collideWorldBounds: false
      - id: b2
        type: controls
        name: Platformer
        parameters:
          allowVerticalMovement: false
  - id: well-1
    type: gravity
    position: {x: 640, y: 360}
    properties:
      gravityStrength: 600
`

func TestDecode(t *testing.T) {
	desc, err := Decode([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if desc.ID != "scene-1" || desc.Name != "Sample" {
		t.Fatalf("header = %q/%q", desc.ID, desc.Name)
	}
	if len(desc.Objects) != 2 {
		t.Fatalf("decoded %d objects, want 2", len(desc.Objects))
	}

	p := desc.Objects[0]
	if p.Type != ObjectPlayer || p.Position.X != 100 || p.Position.Y != 200 || p.Rotation != 45 {
		t.Fatalf("player decoded as %+v", p)
	}
	if len(p.Behaviors) != 2 {
		t.Fatalf("player has %d behaviors, want 2", len(p.Behaviors))
	}
	if p.Behaviors[1].Name != "Platformer" {
		t.Fatalf("behavior name = %q", p.Behaviors[1].Name)
	}

	cfg, err := Resolve(&p)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Physics == nil || cfg.Physics.Mass != 2 || cfg.Physics.WorldBounds {
		t.Fatalf("physics = %+v", cfg.Physics)
	}
	if cfg.Controls == nil || cfg.Controls.AllowVertical {
		t.Fatalf("controls = %+v", cfg.Controls)
	}

	well := desc.Objects[1]
	if got := well.PropFloat("gravityStrength", 0); got != 600 {
		t.Fatalf("gravityStrength = %v, want 600", got)
	}
}

func TestDecodeRejectsMalformedYaml(t *testing.T) {
	if _, err := Decode([]byte("objects: [")); err == nil {
		t.Fatalf("malformed yaml should fail")
	}
}
