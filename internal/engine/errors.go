package engine

import "errors"

var ErrInsufficientPlayers = errors.New("at least 3 players required")
var ErrTooManyPlayers = errors.New("not enough roles for this many players")
var ErrVotingNotOpen = errors.New("voting is not open")
var ErrVotingClosed = errors.New("voting already resolved")
var ErrUnknownVoter = errors.New("voter is not an eligible player")
var ErrUnknownAccused = errors.New("accused is not an eligible player")
