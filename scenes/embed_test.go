package scenes

import (
	"testing"

	"github.com/forgeplay/scenerun/scene"
)

func TestLoadBundledPlayground(t *testing.T) {
	data, path, err := Load("playground")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Fatalf("bundled scene should come from the embed, got disk path %q", path)
	}

	desc, err := scene.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if desc.Name == "" || len(desc.Objects) == 0 {
		t.Fatalf("playground scene decoded empty: %+v", desc)
	}

	ids := make(map[string]bool, len(desc.Objects))
	for _, obj := range desc.Objects {
		if !scene.KnownObjectType(obj.Type) {
			t.Fatalf("object %q has unknown type %q", obj.ID, obj.Type)
		}
		if ids[obj.ID] {
			t.Fatalf("duplicate object id %q", obj.ID)
		}
		ids[obj.ID] = true

		if _, err := scene.Resolve(&obj); err != nil {
			t.Fatalf("object %q does not resolve: %v", obj.ID, err)
		}
	}
}

func TestLoadExtensionOptional(t *testing.T) {
	a, _, err := Load("playground")
	if err != nil {
		t.Fatalf("Load bare name: %v", err)
	}
	b, _, err := Load("playground.yaml")
	if err != nil {
		t.Fatalf("Load with extension: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("extension form should load the same file")
	}
}

func TestLoadMissingScene(t *testing.T) {
	if _, _, err := Load("no-such-scene"); err == nil {
		t.Fatalf("missing scene should fail")
	}
}
