package logger

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "stage fallback",
		Data:    logrus.Fields{"stage": "analysis", "reason": "parse"},
		Caller:  &runtime.Frame{File: "/src/agent/analysis.go", Line: 42},
	}
	entry.Logger.SetReportCaller(true)

	out, err := (&CustomFormatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[2024-05-01 08:30:00] [WARN] [analysis.go:42] stage fallback reason=parse stage=analysis\n", string(out))
}

func TestInitLogger_File(t *testing.T) {
	old := Log
	defer func() { Log = old }()

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, InitLogger("debug", path))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.Debug("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBU]")
	assert.Contains(t, string(data), "hello")
}

func TestInitLogger_BadLevel(t *testing.T) {
	old := Log
	defer func() { Log = old }()

	require.NoError(t, InitLogger("loud", ""))
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
