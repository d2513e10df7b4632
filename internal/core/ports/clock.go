package ports

import "time"

// Clock supplies the current time. The escrow never advances it.
type Clock interface {
	Now() time.Time
}
