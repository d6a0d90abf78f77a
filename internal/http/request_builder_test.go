package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPackBody = `{"items": [{"sku": "A", "dimensions": {"length": 8, "width": 4, "height": 4}}]}`

const duplicateSKUBody = `{"items": [
	{"sku": "A", "dimensions": {"length": 1, "width": 1, "height": 1}},
	{"sku": "A", "dimensions": {"length": 2, "width": 2, "height": 2}}
]}`

// jsonContext builds a gin context carrying the given request body.
func jsonContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/pack", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestRequestBuilder_Bind(t *testing.T) {
	t.Run("binds a pack request", func(t *testing.T) {
		var req dto.PackItemsRequest
		err := NewRequestBuilder(jsonContext(t, validPackBody)).Bind(&req)

		require.NoError(t, err)
		require.Len(t, req.Items, 1)
		assert.Equal(t, "A", req.Items[0].SKU)
		assert.Equal(t, 8, req.Items[0].Dimensions.Length)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		var req dto.PackItemsRequest
		assert.Error(t, NewRequestBuilder(jsonContext(t, `{"items": invalid}`)).Bind(&req))
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		var req dto.PackItemsRequest
		assert.Error(t, NewRequestBuilder(jsonContext(t, "")).Bind(&req))
	})
}

func TestUnmarshalHelpers(t *testing.T) {
	t.Run("from bytes", func(t *testing.T) {
		req, err := UnmarshalFromBytes[dto.PackItemsRequest]([]byte(validPackBody))
		require.NoError(t, err)
		assert.Equal(t, "A", req.Items[0].SKU)

		req, err = UnmarshalFromBytes[dto.PackItemsRequest]([]byte(`{"items": invalid}`))
		assert.Error(t, err)
		assert.Nil(t, req)
	})

	t.Run("from reader", func(t *testing.T) {
		req, err := UnmarshalFromReader[dto.PackItemsRequest](bytes.NewBufferString(validPackBody))
		require.NoError(t, err)
		assert.Equal(t, "A", req.Items[0].SKU)

		req, err = UnmarshalFromReader[dto.PackItemsRequest](bytes.NewBufferString("not json"))
		assert.Error(t, err)
		assert.Nil(t, req)
	})
}

func TestBuildRequest(t *testing.T) {
	req, err := BuildRequest[dto.PackItemsRequest](jsonContext(t, validPackBody))
	require.NoError(t, err)
	assert.Equal(t, "A", req.Items[0].SKU)

	req, err = BuildRequest[dto.PackItemsRequest](jsonContext(t, `{"items": invalid}`))
	assert.Error(t, err)
	assert.Nil(t, req)
}

func TestBuildRequestAndValidate(t *testing.T) {
	t.Run("valid request passes validation", func(t *testing.T) {
		req, err := BuildRequestAndValidate[dto.PackItemsRequest](jsonContext(t, validPackBody))
		require.NoError(t, err)
		assert.Equal(t, "A", req.Items[0].SKU)
	})

	t.Run("well-formed but invalid request fails validation", func(t *testing.T) {
		req, err := BuildRequestAndValidate[dto.PackItemsRequest](jsonContext(t, duplicateSKUBody))
		assert.Error(t, err)
		assert.Nil(t, req)

		var verr *dto.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestMarshalHelpers(t *testing.T) {
	request := dto.PackItemsRequest{Items: []dto.ItemInput{
		{SKU: "A", Dimensions: dto.Dimensions{Length: 8, Width: 4, Height: 4}},
	}}

	t.Run("to bytes", func(t *testing.T) {
		data, err := MarshalJSON(request)
		require.NoError(t, err)

		var back dto.PackItemsRequest
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, request, back)
	})

	t.Run("to writer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, MarshalToWriter(&buf, request))

		var back dto.PackItemsRequest
		require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
		assert.Equal(t, request, back)
	})
}
