package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnviron(t *testing.T) {
	got := Environ([]string{
		"A=1",
		"B=x=y",
		"EMPTY=",
		"NOEQUALS",
		"=C:=C:\\",
		"A=2",
	})

	assert.Equal(t, map[string]string{"A": "2", "B": "x=y", "EMPTY": ""}, got)
}

func TestList_Sorted(t *testing.T) {
	assert.Equal(t,
		[]string{"A=1", "B=", "C=x"},
		List(map[string]string{"C": "x", "A": "1", "B": ""}),
	)
}

func TestValidKey(t *testing.T) {
	for _, k := range []string{"PATH", "my-var", "_x1"} {
		assert.True(t, ValidKey(k), k)
	}

	for _, k := range []string{"", "A B", "A.B", "A=B"} {
		assert.False(t, ValidKey(k), k)
	}
}
