package security_test

import (
	"encoding/base64"
	"testing"

	"logging-web-server/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    security.Credentials
		wantErr bool
	}{
		{
			name:   "bearer token",
			header: "Bearer some-token",
			want:   security.BearerToken{Token: "some-token"},
		},
		{
			name:   "basic credentials",
			header: "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:pw1")),
			want:   security.BasicCredentials{Name: "alice", Password: "pw1"},
		},
		{
			name:   "basic with colon in password",
			header: "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:p:w")),
			want:   security.BasicCredentials{Name: "alice", Password: "p:w"},
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "empty bearer",
			header:  "Bearer ",
			wantErr: true,
		},
		{
			name:    "basic without colon",
			header:  "Basic " + base64.StdEncoding.EncodeToString([]byte("alice")),
			wantErr: true,
		},
		{
			name:    "basic bad base64",
			header:  "Basic %%%",
			wantErr: true,
		},
		{
			name:    "unknown scheme",
			header:  "Digest abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := security.ParseAuthorizationHeader(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, security.ErrBadAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
