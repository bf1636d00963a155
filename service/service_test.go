package service_test

import (
	"context"

	"twitter-gate-service/twitter"
)

// clientsMock hands out a fixed handle pair, mirroring what the manager
// does after a successful first acquisition.
type clientsMock struct {
	modern twitter.Modern
	legacy twitter.Legacy
}

func (m clientsMock) Clients(ctx context.Context) (twitter.Modern, twitter.Legacy, error) {
	return m.modern, m.legacy, nil
}

func intPtr(value int) *int {
	return &value
}
