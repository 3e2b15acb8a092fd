package nilcheck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type thing struct{}

func TestIsNil(t *testing.T) {
	req := require.New(t)

	var p *thing
	var m map[string]int
	var c chan int
	var f func()
	var err error
	var typedErr *myErr
	var s []int

	req.True(IsNil(nil))
	req.True(IsNil(p))
	req.True(IsNil(m))
	req.True(IsNil(c))
	req.True(IsNil(f))
	req.True(IsNil(err))
	req.True(IsNil(typedErr))

	req.False(IsNil(s))
	req.False(IsNil(0))
	req.False(IsNil(""))
	req.False(IsNil(thing{}))
	req.False(IsNil(&thing{}))
	req.False(IsNil(errors.New("x")))
}

type myErr struct{}

func (*myErr) Error() string { return "my error" }
