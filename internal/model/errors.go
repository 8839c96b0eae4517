package model

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGameExists     = errors.New("game already exists")
	ErrNotDriver      = errors.New("player is not driving this board")
	ErrInvalidSquare  = errors.New("invalid square")
	ErrInvalidKey     = errors.New("invalid key")
	ErrUnknownMessage = errors.New("unknown message type")
)
