package copier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDeep(t *testing.T) {
	type Struct struct {
		SliceField []int
	}

	inp := Struct{SliceField: []int{1}}
	assert.Panics(t, func() { PDeep(&inp) }, "should panic on error")

	out := PDeep(inp)
	assert.NotSame(t, &inp, &out, "should return copy")

	inp.SliceField[0] = 10
	assert.Exactly(t, 1, out.SliceField[0], "changes to original value should not modify the copy")
}

func TestOverlay(t *testing.T) {
	type Struct struct {
		Name  string
		Path  string
		Check bool
	}

	base := Struct{Name: "base", Path: "/base", Check: true}
	over := Struct{Path: "/over"}

	out, err := Overlay(base, over)
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, Struct{Name: "base", Path: "/over", Check: true}, out, "should copy only non-empty fields")
	assert.Exactly(t, "/base", base.Path, "should not modify the base")
}
