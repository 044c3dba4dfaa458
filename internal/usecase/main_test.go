package usecase_test

import (
	"io"
	"testing"
	"time"

	"skill-swap-service/internal/usecase"

	"github.com/sirupsen/logrus"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// fixedClock возвращает часы, которые можно переводить вперед в тесте.
func fixedClock(now *time.Time) usecase.Clock {
	return func() time.Time { return *now }
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
