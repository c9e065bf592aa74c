package api

import "errors"

var ErrRequestFailed = errors.New("request failed")
