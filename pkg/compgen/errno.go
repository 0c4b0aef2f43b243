package compgen

import "github.com/thorn-jmh/errorst"

var (
	ErrBadConfig = errorst.NewError("invalid generator configuration")
)
