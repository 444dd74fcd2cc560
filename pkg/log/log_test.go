package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.DebugLevel, Configure("debug"))
	assert.Equal(t, logrus.InfoLevel, Configure("nivel-invalido"))
}

func TestWithFields_DevelopmentFiltering(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	l := L.WithFields(Fields{"user_agent": "curl"}).(*logger)
	assert.NotContains(t, l.entry.Data, "user_agent")

	l = L.WithFields(Fields{"path": "/api/sensors/latest", "user_agent": "curl"}).(*logger)
	assert.Contains(t, l.entry.Data, "path")
	assert.NotContains(t, l.entry.Data, "user_agent")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	l := L.WithFields(Fields{"user_agent": "curl"}).(*logger)
	assert.Contains(t, l.entry.Data, "user_agent")
}
