package cli

import "errors"

var (
	ErrRecursiveScript = errors.New("recursive script execution")
	ErrNoSession       = errors.New("no open session")
)
