package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts-be/internal/entities"
	"accounts-be/internal/middleware"
	"accounts-be/internal/models"
	"accounts-be/internal/service"
)

type fakeProfileService struct {
	updateOut *entities.User
	updateErr error

	gotReq *models.UpdateProfileRequest
}

func (f *fakeProfileService) UpdateProfile(user *entities.User, req *models.UpdateProfileRequest) (*entities.User, error) {
	f.gotReq = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

// newProfileRouter wires the profile routes behind a stub that injects the
// authenticated user, standing in for the auth middleware.
func newProfileRouter(svc service.ProfileService, user *entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewProfileController(svc)

	me := router.Group("/me")
	me.Use(func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	})
	me.GET("", controller.GetProfile)
	me.PATCH("", controller.UpdateProfile)
	return router
}

func patchJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/me", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetProfile(t *testing.T) {
	bio := "hi"
	user := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice", Bio: &bio, PasswordHash: "$2a$secret"}
	router := newProfileRouter(&fakeProfileService{}, user)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a@x.com", resp["email"])
	assert.Equal(t, "hi", resp["bio"])
	assert.NotContains(t, resp, "password_hash")
}

func TestGetProfile_NullBio(t *testing.T) {
	user := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice"}
	router := newProfileRouter(&fakeProfileService{}, user)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// An unset bio serializes as an explicit null, not a missing key
	assert.Contains(t, w.Body.String(), `"bio":null`)
}

func TestUpdateProfile_PartialBody(t *testing.T) {
	user := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice"}
	bio := "This is my bio"
	updated := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice", Bio: &bio}
	svc := &fakeProfileService{updateOut: updated}
	router := newProfileRouter(svc, user)

	w := patchJSON(router, `{"bio":"This is my bio"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This is my bio")

	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.Name)
	require.NotNil(t, svc.gotReq.Bio)
	assert.Equal(t, "This is my bio", *svc.gotReq.Bio)
}

func TestUpdateProfile_EmptyBodies(t *testing.T) {
	user := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice"}

	// Both `{}` and a body-less PATCH are no-op updates that succeed
	for _, body := range []string{`{}`, ""} {
		svc := &fakeProfileService{updateOut: user}
		router := newProfileRouter(svc, user)

		w := patchJSON(router, body)
		assert.Equal(t, http.StatusOK, w.Code, "body %q", body)
		require.NotNil(t, svc.gotReq)
		assert.Nil(t, svc.gotReq.Name)
		assert.Nil(t, svc.gotReq.Bio)
	}
}

func TestUpdateProfile_DisallowedFieldsIgnored(t *testing.T) {
	user := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice"}
	svc := &fakeProfileService{updateOut: user}
	router := newProfileRouter(svc, user)

	// email and id are not part of the update shape at all, so they are
	// dropped during binding and can never reach the store.
	w := patchJSON(router, `{"email":"evil@x.com","id":"u-666","created_at":"2000-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.gotReq)
	assert.Nil(t, svc.gotReq.Name)
	assert.Nil(t, svc.gotReq.Bio)
}

func TestUpdateProfile_ValidationErrors(t *testing.T) {
	user := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice"}
	router := newProfileRouter(&fakeProfileService{updateOut: user}, user)

	cases := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"A"}`},
		{"long name", `{"name":"` + strings.Repeat("a", 121) + `"}`},
		{"long bio", `{"bio":"` + strings.Repeat("b", 501) + `"}`},
		{"not json", `nope`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := patchJSON(router, tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestUpdateProfile_StoreFailure(t *testing.T) {
	user := &entities.User{ID: "u-1", Email: "a@x.com", Name: "Alice"}
	router := newProfileRouter(&fakeProfileService{updateErr: errors.New("connection refused")}, user)

	w := patchJSON(router, `{"name":"New Name"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
