package events

import "time"

// CoercionStart is emitted before coercing an operation's variables.
type CoercionStart struct {
	OperationName string
	Variables     int
}

// CoercionFinish is emitted after coercing an operation's variables.
type CoercionFinish struct {
	OperationName string
	Coerced       int
	Errors        int
	Duration      time.Duration
}
