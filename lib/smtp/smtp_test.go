package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendEMail(t *testing.T) {
	t.Run(`not configured is skipped check`, func(t *testing.T) {
		sender := New(Config{})
		require.False(t, sender.IsConfigured())
		require.NoError(t, sender.SendEMail("user@example.com", "subject", "text"))
	})

	t.Run(`message headers check`, func(t *testing.T) {
		msg := buildMessage("hr@example.com", "user@example.com", "Доработка", "Текст")
		require.True(t, strings.HasPrefix(msg, "From: hr@example.com\r\n"))
		require.Contains(t, msg, "To: user@example.com\r\n")
		require.Contains(t, msg, "Subject: Оценка эффективности - Доработка\r\n")
		require.True(t, strings.HasSuffix(msg, "\r\n\r\nТекст\r\n"))
	})
}
