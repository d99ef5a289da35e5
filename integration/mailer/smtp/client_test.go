package smtp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailbundle/core/mailer"
	"github.com/dmitrymomot/mailbundle/integration/mailer/smtp"
)

func validConfig() smtp.Config {
	return smtp.Config{
		Host:         "smtp.example.com",
		Port:         587,
		Username:     "user@example.com",
		Password:     "password",
		TLSMode:      "starttls",
		SenderEmail:  "sender@example.com",
		SupportEmail: "support@example.com",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*smtp.Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *smtp.Config) {},
		},
		{
			name:    "empty host",
			mutate:  func(cfg *smtp.Config) { cfg.Host = "" },
			wantErr: "Host is required",
		},
		{
			name:    "invalid port - zero",
			mutate:  func(cfg *smtp.Config) { cfg.Port = 0 },
			wantErr: "Port must be between 1 and 65535",
		},
		{
			name:    "invalid port - too high",
			mutate:  func(cfg *smtp.Config) { cfg.Port = 70000 },
			wantErr: "Port must be between 1 and 65535",
		},
		{
			name:    "empty username",
			mutate:  func(cfg *smtp.Config) { cfg.Username = "" },
			wantErr: "Username is required",
		},
		{
			name:    "empty password",
			mutate:  func(cfg *smtp.Config) { cfg.Password = "" },
			wantErr: "Password is required",
		},
		{
			name:    "invalid TLS mode",
			mutate:  func(cfg *smtp.Config) { cfg.TLSMode = "ssl" },
			wantErr: "TLSMode must be starttls, tls, or plain",
		},
		{
			name:    "invalid sender email",
			mutate:  func(cfg *smtp.Config) { cfg.SenderEmail = "not-an-email" },
			wantErr: "SenderEmail must be a valid email address",
		},
		{
			name:    "invalid support email",
			mutate:  func(cfg *smtp.Config) { cfg.SupportEmail = "nope" },
			wantErr: "SupportEmail must be a valid email address",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			sender, err := smtp.New(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.NotNil(t, sender)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustNewClient(t *testing.T) {
	t.Parallel()

	t.Run("panics on invalid config", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			smtp.MustNewClient(smtp.Config{})
		})
	})

	t.Run("returns sender on valid config", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			smtp.MustNewClient(validConfig())
		})
	})
}

func TestSend_ContextCancelled(t *testing.T) {
	t.Parallel()

	sender, err := smtp.New(validConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = sender.Send(ctx, mailer.Message{
		SendTo:   "user@example.com",
		Subject:  "Hi",
		BodyHTML: "<h1>Hi</h1>",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, mailer.ErrFailedToSend)
}

func TestSend_InvalidMessage(t *testing.T) {
	t.Parallel()

	sender, err := smtp.New(validConfig())
	require.NoError(t, err)

	err = sender.Send(context.Background(), mailer.Message{SendTo: "user@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mailer.ErrInvalidParams)
}
