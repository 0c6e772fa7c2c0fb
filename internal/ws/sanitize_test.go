package ws_test

import (
	"testing"

	"class_hub/internal/ws"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContent(t *testing.T) {
	assert.Equal(t, "good luck", ws.SanitizeContent("  good luck  "))
	assert.Equal(t, "жирный текст", ws.SanitizeContent("<b>жирный</b> текст"))
	assert.Equal(t, "", ws.SanitizeContent("<script>alert('xss')</script>"))
	assert.Equal(t, "до  после", ws.SanitizeContent("до <style>p{}</style> после"))
	assert.Equal(t, "", ws.SanitizeContent("   "))
	assert.Equal(t, "", ws.SanitizeContent("<img src=x onerror=alert(1)>"))
}
