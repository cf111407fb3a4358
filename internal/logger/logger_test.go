package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	assert.Contains(t, buf.String(), "[DEBUG] test message arg")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Test Section")

	assert.Contains(t, buf.String(), "=== Test Section ===")
	assert.NotContains(t, buf.String(), "[INFO]")
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info message %d", 42)

	assert.Contains(t, buf.String(), "[INFO] info message 42")
}

func TestWarn(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Warn("warning message")

	assert.Contains(t, buf.String(), "[WARN] warning message")
}

func TestLogger(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Logger().Info("quiet", zap.String("run_id", "r1"))
	assert.Zero(t, buf.Len())

	SetVerbose(true)
	Logger().Info("loud", zap.String("run_id", "r1"))
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "r1")
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
