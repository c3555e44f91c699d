package gallery

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"schooldirectory/internal/blob"
	"schooldirectory/internal/database"
	"schooldirectory/internal/domain"
	"schooldirectory/internal/modules/school"
	"schooldirectory/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.School{}))

	blobs, err := blob.NewStore(filepath.Join(t.TempDir(), "schoolImages"))
	require.NoError(t, err)

	handler := school.NewHandler(school.NewService(repository.NewSchoolRepository(db), blobs))

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	router.Static("/schoolImages", blobs.Dir())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func validSubmission() school.SchoolSubmission {
	return school.SchoolSubmission{
		Name:    "Lotus High",
		Address: "12 Palm Rd",
		City:    "Pune",
		State:   "MH",
		Contact: "9876543210",
		Email:   "x@y.com",
	}
}

func TestClientRoundTrip(t *testing.T) {
	srv := startServer(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	jpeg := append([]byte{0xFF, 0xD8, 0xFF}, make([]byte, 2045)...)
	created, err := client.CreateSchool(ctx, validSubmission(), "school.jpg", bytes.NewReader(jpeg))
	require.NoError(t, err)
	require.Equal(t, "School added successfully", created.Message)
	require.NotNil(t, created.Image)

	schools, err := client.ListSchools(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, created.ID, schools[0].ID)

	got, err := client.GetSchool(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lotus High", got.Name)

	require.NoError(t, client.DeleteSchool(ctx, created.ID))

	_, err = client.GetSchool(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "School not found", apiErr.Message)
}

func TestClientCreateWithoutImage(t *testing.T) {
	srv := startServer(t)
	client := NewClient(srv.URL)

	created, err := client.CreateSchool(context.Background(), validSubmission(), "", nil)
	require.NoError(t, err)
	assert.Nil(t, created.Image)
}

func TestClientFormValidation(t *testing.T) {
	// Format rules run in the client before any request goes out, so the
	// server URL can be nonsense.
	client := NewClient("http://invalid.localhost:1")

	sub := validSubmission()
	sub.Contact = "12345" // not 10 digits

	_, err := client.CreateSchool(context.Background(), sub, "", nil)
	var formErr *FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Fields, "Contact")

	sub = validSubmission()
	sub.Email = "not-an-email"
	_, err = client.CreateSchool(context.Background(), sub, "", nil)
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Fields, "Email")

	sub = validSubmission()
	sub.Name = ""
	_, err = client.CreateSchool(context.Background(), sub, "", nil)
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Fields, "Name")
}

func TestClientDeleteNotFound(t *testing.T) {
	srv := startServer(t)
	client := NewClient(srv.URL)

	err := client.DeleteSchool(context.Background(), 9999)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}
