package registry

import (
	"testing"

	"github.com/vovakirdan/arena-weather/internal/core"
)

type stubScene struct{ id string }

func (s *stubScene) ID() string { return s.id }
func (s *stubScene) Title() string { return "Stub " + s.id }
func (s *stubScene) Reset(core.RuntimeConfig) {}
func (s *stubScene) Resize(int, int) {}
func (s *stubScene) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubScene) Render(*core.Screen) {}
func (s *stubScene) State() core.SceneState { return core.SceneState{} }

func stubFactory(id string) Factory {
	return func(Env) Scene { return &stubScene{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", stubFactory("test-zeta"))
	Register("test-alpha", stubFactory("test-alpha"))

	if !Exists("test-alpha") {
		t.Fatal("registered scene should exist")
	}
	if Exists("test-missing") {
		t.Error("unregistered scene should not exist")
	}

	s, err := Create("test-alpha", DefaultEnv())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID() != "test-alpha" {
		t.Errorf("ID() = %q", s.ID())
	}

	if _, err := Create("test-missing", DefaultEnv()); err == nil {
		t.Error("Create should fail for unknown scenes")
	}

	var alphaIdx, zetaIdx = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test-alpha":
			alphaIdx = i
			if info.Title != "Stub test-alpha" {
				t.Errorf("Title = %q", info.Title)
			}
		case "test-zeta":
			zetaIdx = i
		}
	}
	if alphaIdx < 0 || zetaIdx < 0 || alphaIdx > zetaIdx {
		t.Errorf("List should be sorted by ID, got alpha=%d zeta=%d", alphaIdx, zetaIdx)
	}

	ordered := Ordered()
	alphaIdx, zetaIdx = -1, -1
	for i, id := range ordered {
		switch id {
		case "test-alpha":
			alphaIdx = i
		case "test-zeta":
			zetaIdx = i
		}
	}
	if zetaIdx > alphaIdx {
		t.Errorf("Ordered should keep registration order, got %v", ordered)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", stubFactory("test-dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", stubFactory("test-dup"))
}

func TestDefaultEnv(t *testing.T) {
	env := DefaultEnv()
	if env.Params == nil || env.Params.ReferenceAspectRatio <= 0 {
		t.Fatalf("DefaultEnv params = %+v", env.Params)
	}
	if len(env.FlashColors) == 0 {
		t.Error("DefaultEnv should carry a flash palette")
	}
}
