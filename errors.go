package rsakex

import "github.com/privacybydesign/rsakex/internal/common"

// Errors returned by this package (and by strongprime and random) wrap one of these; test for
// them with errors.Is from github.com/go-errors/errors.
var (
	ErrDomain            = common.ErrDomain
	ErrArithmetic        = common.ErrArithmetic
	ErrResourceExhausted = common.ErrResourceExhausted
	ErrStopped           = common.ErrStopped
)
