package relay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiserv/backend/relay"
	"github.com/digiserv/backend/subm"
)

func TestConfigured(t *testing.T) {
	full := relay.Config{ServiceID: "svc_1", TemplateID: "tpl_1", PublicKey: "key_1"}
	assert.True(t, full.Configured())

	assert.False(t, relay.Config{}.Configured())
	assert.False(t, relay.Config{ServiceID: "svc_1", TemplateID: "tpl_1"}.Configured())

	placeholder := relay.Config{
		ServiceID:  "your_service_id",
		TemplateID: "your_template_id",
		PublicKey:  "your_public_key",
	}
	assert.False(t, placeholder.Configured())
}

func TestTemplateParams(t *testing.T) {
	params := relay.TemplateParams(subm.Form{
		Name:    "Anil",
		Email:   "anil@test.com",
		Phone:   "",
		Problem: "",
		Message: "Router not working",
	})
	assert.Equal(t, "Anil", params["from_name"])
	assert.Equal(t, "anil@test.com", params["from_email"])
	assert.Equal(t, "Not provided", params["phone"])
	assert.Equal(t, "General Inquiry", params["subject"])
	assert.Equal(t, "Router not working", params["message"])
}

func TestSendPostsWireFormat(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := relay.New(relay.Config{
		ServiceID:  "svc_1",
		TemplateID: "tpl_1",
		PublicKey:  "key_1",
		BaseURL:    server.URL,
	})

	err := client.Send(context.Background(), subm.Form{
		Name:    "Anil",
		Email:   "anil@test.com",
		Message: "help",
	})
	require.NoError(t, err)

	assert.Equal(t, "svc_1", got["service_id"])
	assert.Equal(t, "tpl_1", got["template_id"])
	assert.Equal(t, "key_1", got["user_id"])
	params, ok := got["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Anil", params["from_name"])
}

func TestSendReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid public key"))
	}))
	defer server.Close()

	client := relay.New(relay.Config{
		ServiceID:  "svc_1",
		TemplateID: "tpl_1",
		PublicKey:  "bad",
		BaseURL:    server.URL,
	})

	err := client.SendTemplate(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid public key")
}
