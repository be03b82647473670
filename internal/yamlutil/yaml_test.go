package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Depth int    `yaml:"depth"`
}

func TestUnmarshalStrict(t *testing.T) {
	var got sample
	if err := UnmarshalStrict([]byte("name: toc\ndepth: 3\n"), &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "toc" || got.Depth != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	var got sample
	if err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &got); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestUnmarshalStrict_Validation(t *testing.T) {
	var got sample

	if err := UnmarshalStrict(nil, &got); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty input: got %v, want ErrEmptyInput", err)
	}
	if err := UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, ErrNilTarget) {
		t.Errorf("nil target: got %v, want ErrNilTarget", err)
	}

	big := []byte(strings.Repeat("a", MaxConfigSize+1))
	if err := UnmarshalStrict(big, &got); !errors.Is(err, ErrInputTooBig) {
		t.Errorf("oversized: got %v, want ErrInputTooBig", err)
	}
}
