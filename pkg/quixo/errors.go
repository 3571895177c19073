package quixo

import "errors"

var (
	ErrInvalidMove    = errors.New("quixo: invalid move")
	ErrNoLegalMoves   = errors.New("quixo: no legal moves")
	ErrMalformedBoard = errors.New("quixo: malformed board")
)
