package service

import "time"

const (
	defaultTickInterval    = 1 * time.Second
	defaultRefreshInterval = 2 * time.Minute
)
