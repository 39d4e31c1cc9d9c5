package utils

import "errors"

// ErrUserInitiatedExit is returned when the user asks to leave, by typing
// 'q'/'quit' or by sending an interrupt.
var ErrUserInitiatedExit = errors.New("user exit")
