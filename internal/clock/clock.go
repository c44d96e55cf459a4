// Package clock provides the injectable time source used by the reminder
// scheduler, so the pure check logic never reads an ambient clock.
package clock

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
)

// Clock yields the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the local system clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Intended for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// NTP is a system clock corrected by the offset reported by an NTP server,
// measured once at construction. Reminder hosts that care about firing on the
// true minute can use it instead of System.
type NTP struct {
	offset time.Duration
}

// NewNTP queries the given NTP server and returns a clock applying its
// reported offset.
func NewNTP(server string) (*NTP, error) {
	resp, err := ntp.Query(server)
	if err != nil {
		return nil, fmt.Errorf("ntp.Query %s: %w", server, err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid response from %s: %w", server, err)
	}
	return &NTP{offset: resp.ClockOffset}, nil
}

func (c *NTP) Now() time.Time { return time.Now().Add(c.offset) }
