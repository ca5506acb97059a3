package steam

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// SvenCoopAppID is the steam application id of Sven Co-op.
	SvenCoopAppID = 225840

	// DefaultLimit is the maximum number of servers requested per query.
	DefaultLimit = 5000

	serverListPath = "/IGameServersService/GetServerList/v1"
)

// Query selects which servers the directory returns.
type Query struct {
	AppID     int
	Dedicated bool
	Limit     int
}

// DefaultQuery returns the dedicated Sven Co-op server query.
func DefaultQuery() Query {
	return Query{
		AppID:     SvenCoopAppID,
		Dedicated: true,
		Limit:     DefaultLimit,
	}
}

// Filter renders the steam master server filter expression,
// e.g. \appid\225840\dedicated\1
func (q Query) Filter() string {
	filter := fmt.Sprintf(`\appid\%d`, q.AppID)
	if q.Dedicated {
		filter += `\dedicated\1`
	}
	return filter
}

// Validate checks the query before it is sent.
func (q Query) Validate() error {
	if q.AppID <= 0 {
		return fmt.Errorf("app id must be positive, got %d", q.AppID)
	}
	if q.Limit < 0 {
		return fmt.Errorf("limit must be >= 0, got %d", q.Limit)
	}
	return nil
}

// values builds the query string. The key is passed in so it never ends up
// in a Query value that may be logged.
func (q Query) values(key string) url.Values {
	v := url.Values{}
	v.Set("key", key)
	v.Set("filter", q.Filter())

	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	v.Set("limit", strconv.Itoa(limit))

	return v
}
