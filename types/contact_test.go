package types

import (
	"testing"

	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactSchemaResponse(t *testing.T) {
	resp := NewContactSchemaResponse(contact.ContactSchema())

	require.Len(t, resp.Fields, 7)
	assert.Equal(t, "Send Message", resp.SubmitLabel)
	assert.Equal(t, "Sending...", resp.BusyLabel)

	keys := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"name", "email", "phone", "company", "category", "subject", "message"}, keys)

	category := resp.Fields[4]
	assert.Equal(t, "select", category.Kind)
	assert.True(t, category.Required)
	require.Len(t, category.Options, 5)
	assert.Equal(t, ContactOption{Value: "media", Label: "Media & Press"}, category.Options[4])

	assert.False(t, resp.Fields[2].Required)
	assert.Equal(t, "+62 xxx xxxx xxxx", resp.Fields[2].Placeholder)
}

func TestNewContactSessionResponse(t *testing.T) {
	result := contact.ValidationResult{Issues: []contact.FieldError{{Field: "name", Message: "Name is required"}}}
	resp := NewContactSessionResponse("abc", contact.Failed("timeout"), result, contact.FormValues{"name": ""})

	assert.Equal(t, "abc", resp.ID)
	assert.Equal(t, "failed", resp.State)
	assert.Equal(t, "timeout", resp.Reason)
	assert.Equal(t, "An error occurred. Please try again.", resp.Notice)
	assert.Equal(t, "Send Message", resp.ButtonLabel)
	assert.False(t, resp.Busy)
	assert.Equal(t, map[string]string{"name": "Name is required"}, resp.Errors)
}

func TestDefaultSiteInfo(t *testing.T) {
	info := DefaultSiteInfo("1.2.3", "")
	assert.Equal(t, "support@lumbunggroup.co.id", info.Contact.Email)
	assert.Equal(t, "id_ID", info.Locale)
	assert.Equal(t, "1.2.3", info.Version)

	assert.Equal(t, "hello@lumbunggroup.co.id", DefaultSiteInfo("", "hello@lumbunggroup.co.id").Contact.Email)
}
