package constants

import "time"

const (
	// HotColdWindow is the number of most recently extracted draws that
	// feed the hot/cold ranking.
	HotColdWindow = 50

	// HotColdCount is how many numbers each of the hot and cold lists holds.
	HotColdCount = 5
)

const (
	// MaxResultContainers caps how many matched result containers the
	// extraction engine inspects per page.
	MaxResultContainers = 100

	// MaxTokenValue bounds parsed numeric tokens; lottery numbers never
	// exceed two digits.
	MaxTokenValue = 100
)

const (
	DatabaseTimeout = 5 * time.Second
)

const (
	DBMaxOpenConns    = 1
	DBMaxIdleConns    = 1
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
