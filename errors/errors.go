package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrUnknownBackend = fmt.Errorf("unknown store backend")
	ErrRoomNotFound   = fmt.Errorf("room not found")
)
