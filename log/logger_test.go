package log

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/zinrai/ansinv/inventory"
)

func TestNewLoggerDefaultsToWarn(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEV_MODE", "")

	var buf bytes.Buffer
	logger := NewLoggerTo(zapcore.AddSync(&buf), "test")

	logger.Info("hidden")
	g.Expect(buf.String()).To(BeEmpty())

	logger.Error(nil, "shown")
	g.Expect(buf.String()).To(ContainSubstring(`"msg":"shown"`))
}

func TestNewLoggerDebugTracesInventory(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_MODE", "false")

	var buf bytes.Buffer
	logger := NewLoggerTo(zapcore.AddSync(&buf), "inventory", "env", "test")

	inv := inventory.NewInventory("prod", inventory.WithLogger(logger))
	inv.AddGroup(inventory.NewGroup("web", nil))
	inv.AddGroup(inventory.NewGroup("web", nil))

	var entry map[string]interface{}
	g.Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
	g.Expect(entry).To(HaveKeyWithValue("msg", "Dropping duplicate group"))
	g.Expect(entry).To(HaveKeyWithValue("logger", "inventory"))
	g.Expect(entry).To(HaveKeyWithValue("env", "test"))
	g.Expect(entry).To(HaveKeyWithValue("inventory", "prod"))
	g.Expect(entry).To(HaveKeyWithValue("group", "web"))
}

func TestNewLoggerDevMode(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("DEV_MODE", "true")

	var buf bytes.Buffer
	NewLoggerTo(zapcore.AddSync(&buf), "test").Info("hello", "k", "v")

	g.Expect(buf.String()).To(ContainSubstring("hello"))
	g.Expect(buf.String()).NotTo(HavePrefix("{"))
}
