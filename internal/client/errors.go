package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArguments = errors.New("wrong number of arguments")
	ErrEmptyPassword  = errors.New("password is empty")
)
