package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/debanjo31/uLearnApi/pkg/errors"
)

func TestSuccessAndErrorResponses(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Test Success
	Success(c, map[string]string{"foo": "bar"}, "ok")
	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(200), body["statusCode"]) // json numbers decode to float64
	require.Equal(t, "ok", body["message"])
	require.Contains(t, body, "data")

	// Test Error
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request")
	require.Equal(t, 400, w.Code)
	var bodyErr map[string]any
	err = json.Unmarshal(w.Body.Bytes(), &bodyErr)
	require.NoError(t, err)
	require.Equal(t, false, bodyErr["success"])
	require.Equal(t, float64(400), bodyErr["statusCode"])
	require.Equal(t, "bad request", bodyErr["message"])
	require.Equal(t, "bad request", bodyErr["error"])
}

func TestPaginatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	items := []map[string]any{{"id": 1}, {"id": 2}}
	meta := map[string]any{
		"currentPage": 1,
		"totalPages":  1,
		"totalItems":  2,
		"hasNextPage": false,
		"hasPrevPage": false,
	}
	Paginated(c, items, meta, "Items retrieved")

	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(200), body["statusCode"])
	pagination := body["pagination"].(map[string]any)
	require.Equal(t, float64(1), pagination["currentPage"])
	require.Equal(t, float64(2), pagination["totalItems"])
	require.Equal(t, false, pagination["hasNextPage"])
}

func TestFromErrorMapsTaxonomy(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{apperrors.ErrBadRequest, 400},
		{apperrors.ErrUnauthorized, 401},
		{apperrors.ErrForbidden, 403},
		{apperrors.ErrNotFound, 404},
		{apperrors.ErrConflict, 409},
		{apperrors.ErrInternal, 500},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromError(c, tc.err, "boom")
		require.Equal(t, tc.code, w.Code)
	}
}

func TestFromErrorHidesUnexpectedErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromError(c, json.Unmarshal([]byte("{"), &struct{}{}), "connection string leaked")

	require.Equal(t, 500, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Something went wrong", body["message"])
}
