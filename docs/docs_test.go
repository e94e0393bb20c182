package docs_test

import (
	"testing"

	"eligibility/docs"
	"eligibility/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegister(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, docs.Register(swagger))

	doc, err := swag.ReadDoc()
	require.NoError(t, err)
	assert.Contains(t, doc, "/api/v1/eligibility")
	assert.Contains(t, doc, "Carrier Service Eligibility")
}
