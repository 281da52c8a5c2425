package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"aquadrop-backend/storage"
	"aquadrop-backend/utils"
)

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dayPtr(s string) *civil.Date {
	d := day(s)
	return &d
}

func ptr[T any](v T) *T { return &v }

func clockAt(s string) utils.FixedClock {
	d := day(s)
	return utils.FixedClock{T: time.Date(d.Year, d.Month, d.Day, 10, 30, 0, 0, time.UTC)}
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// flakyGateway fails every Save while failSaves is set.
type flakyGateway struct {
	*storage.MemoryGateway
	failSaves bool
	saves     int
}

var errGatewayDown = errors.New("gateway down")

func (g *flakyGateway) Save(ctx context.Context, docs ...storage.Document) error {
	if g.failSaves {
		return errGatewayDown
	}
	g.saves++
	return g.MemoryGateway.Save(ctx, docs...)
}

func newTestStore(t *testing.T, today string) (*Store, *flakyGateway) {
	t.Helper()
	gw := &flakyGateway{MemoryGateway: storage.NewMemoryGateway()}
	s, err := OpenStore(context.Background(), gw,
		WithClock(clockAt(today)),
		WithLogger(quietLogger()),
		WithIDGenerator(sequentialIDs("ID")),
	)
	require.NoError(t, err)
	return s, gw
}
