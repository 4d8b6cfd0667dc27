/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(io.Discard)
		SetDebug(false)
	})

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	Warn("duplicate %q", "sv_port")
	assert.Equal(t, "teecfg: warning: duplicate \"sv_port\"\n", buf.String())

	buf.Reset()
	Info("loaded %s config", "YAML")
	assert.Equal(t, "teecfg: loaded YAML config\n", buf.String())

	buf.Reset()
	SetDebug(true)
	Debug("parsed %d entries", 3)
	assert.Equal(t, "teecfg: debug: parsed 3 entries\n", buf.String())

	buf.Reset()
	SetDebug(false)
	DebugIf(false, "skipped")
	assert.Empty(t, buf.String())
	DebugIf(true, "forced %s", "on")
	assert.Equal(t, "teecfg: debug: forced on\n", buf.String())
}
