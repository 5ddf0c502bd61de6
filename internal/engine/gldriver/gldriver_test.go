package gldriver

import (
	"github.com/Faultbox/glstate/internal/engine/glstate"
	"github.com/Faultbox/glstate/internal/engine/shader"
)

var (
	_ shader.Driver  = (*Driver)(nil)
	_ glstate.Driver = (*Driver)(nil)
)
