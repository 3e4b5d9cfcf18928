package transport

import "errors"

var ErrWouldBlock = errors.New("transport: would block")
