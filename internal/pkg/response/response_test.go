package response

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3}, NewPagination(2, 10, 25))
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, NewPagination(0, 10, 0))
	assert.Equal(t, 1, NewPagination(1, 0, 1).Limit)
}

func TestEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/created", func(c fiber.Ctx) error { return Created(c, "", fiber.Map{"id": 1}) })
	app.Get("/weird", func(c fiber.Ctx) error { return Error(c, 42, "", nil) })

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/created", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	b, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"status":201,"message":"created","data":{"id":1}}`, string(b))

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/weird", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}
