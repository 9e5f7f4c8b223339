package profile

import "testing"

func TestMake(t *testing.T) {
	s := Make(WithMode("cpu"), nil, WithPath("/tmp/p"), WithQuiet(true))

	want := Settings{Mode: "cpu", Path: "/tmp/p", Quiet: true}
	if s != want {
		t.Errorf("Make() = %+v, want %+v", s, want)
	}
}

func TestStartWithoutMode(t *testing.T) {
	p := Make(WithPath(t.TempDir())).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() = %T, want no-op", p)
	}

	p.Stop()
}

func TestStartUnknownMode(t *testing.T) {
	p := Make(WithMode("bogus")).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() = %T, want no-op", p)
	}

	p.Stop()
}
