package handlers

import "time"

// Cookie names
const (
	DeviceCookieName = "device_id"
	ParentCookieName = "parent_token"
)

// Device cookies are long lived; the device is the player identity
const deviceCookieLifetime = 365 * 24 * time.Hour

// Parent PIN attempts allowed per IP per window
const (
	pinAttemptLimit  = 5
	pinAttemptWindow = time.Minute
)

// Player names are capped to keep leaderboard entries sane
const maxPlayerNameLength = 30
