package client

import "github.com/pkg/errors"

// ErrNotConnected indicates that GetAds was called before Connect.
var ErrNotConnected = errors.New("not connected")
