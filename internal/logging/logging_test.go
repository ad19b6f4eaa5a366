package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_writesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, logiface.LevelInformational)
	require.NotNil(t, logger)

	logger.Info().
		Str(`line`, `1/2 + 1/3`).
		Str(`result`, `5/6`).
		Log(`evaluated`)
	logger.Warning().
		Err(errors.New(`rational: division by zero`)).
		Log(`evaluation failed`)

	assert.Equal(t,
		`{"lvl":"info","line":"1/2 + 1/3","result":"5/6","msg":"evaluated"}`+"\n"+
			`{"lvl":"warning","err":"rational: division by zero","msg":"evaluation failed"}`+"\n",
		buf.String(),
	)
}

func TestNew_levelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, logiface.LevelWarning)

	logger.Info().Log(`dropped`)
	logger.Debug().Log(`dropped`)
	assert.Empty(t, buf.String())

	logger.Err().Log(`kept`)
	assert.Equal(t, `{"lvl":"err","msg":"kept"}`+"\n", buf.String())
}

func TestNew_timeField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, logiface.LevelInformational, WithTimeField(`ts`))
	logger.Info().Log(`hello`)
	assert.Regexp(t, `^\{"ts":"[^"]+","lvl":"info","msg":"hello"\}\n$`, buf.String())
}

func TestNew_disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, logiface.LevelDisabled)
	logger.Emerg().Log(`dropped`)
	assert.Empty(t, buf.String())
}
