package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRoutesByMessageType(t *testing.T) {
	var info, errors bytes.Buffer
	log := NewLogger(&info, &errors, 10)

	log.Write(NewMessage(ANALYZER_LAYER, INFO, "analyzed %d words", 3))
	log.Write(NewMessage(REPOSITORY_LAYER, ERROR, "save failed"))
	log.Close()

	assert.Contains(t, info.String(), "INFO: analyzed 3 words")
	assert.Contains(t, info.String(), "analyzer")
	assert.Contains(t, errors.String(), "ERROR: save failed")
	assert.Contains(t, errors.String(), "repository")
}

func TestLoggerAppendsNewline(t *testing.T) {
	var info, errors bytes.Buffer
	log := NewLogger(&info, &errors, 10)

	log.Write(NewMessage(MAIN_LAYER, DEBUG, "starting"))
	log.Close()

	assert.True(t, bytes.HasSuffix(info.Bytes(), []byte("\n")))
}
