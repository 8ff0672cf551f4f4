package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalize(t *testing.T) {
	text := Localize("StartHandler", map[string]string{"BtnLogin": "🔑 Авторизация"})
	require.Contains(t, text, "🔑 Авторизация")
	require.NotContains(t, text, "{BtnLogin}")

	require.Equal(t, "NoSuchKey", Localize("NoSuchKey", nil), "unknown keys surface themselves")

	require.NotEmpty(t, Localize("TryLaterError", nil))
}
