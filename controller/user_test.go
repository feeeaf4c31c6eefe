package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjaymalladi/AskAlgo-Backend/models"
)

type fakeAuth struct {
	verifyUID  string
	verifyErr  error
	users      map[string]*models.User
	createErr  error
	createdUID string
}

func (a *fakeAuth) VerifyToken(_ context.Context, _ string) (string, error) {
	return a.verifyUID, a.verifyErr
}

func (a *fakeAuth) GetUser(_ context.Context, uid string) (*models.User, error) {
	if user, ok := a.users[uid]; ok {
		return user, nil
	}
	return nil, errors.New("user not found")
}

func (a *fakeAuth) CreateUser(_ context.Context, email, _, name string) (*models.User, error) {
	if a.createErr != nil {
		return nil, a.createErr
	}
	return &models.User{UID: a.createdUID, Email: email, DisplayName: name}, nil
}

func newUserRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewUserController(auth)
	r := gin.New()
	r.POST("/signin", ctrl.SignIn)
	r.POST("/register", ctrl.Register)
	r.POST("/verify_token", ctrl.VerifyToken)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignInWithIDToken(t *testing.T) {
	auth := &fakeAuth{
		verifyUID: "u1",
		users:     map[string]*models.User{"u1": {UID: "u1", Email: "dev@askalgo.app"}},
	}
	w := postJSON(t, newUserRouter(auth), "/signin", `{"idToken":"good"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":"u1","email":"dev@askalgo.app"}`, w.Body.String())
}

func TestSignInInvalidIDToken(t *testing.T) {
	auth := &fakeAuth{verifyErr: errors.New("bad signature")}
	w := postJSON(t, newUserRouter(auth), "/signin", `{"idToken":"forged"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid ID token")
}

func TestSignInEmailPasswordRejected(t *testing.T) {
	w := postJSON(t, newUserRouter(&fakeAuth{}), "/signin",
		`{"email":"dev@askalgo.app","password":"hunter2"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not supported via Admin SDK")
}

func TestSignInMissingParameters(t *testing.T) {
	w := postJSON(t, newUserRouter(&fakeAuth{}), "/signin", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request parameters")
}

func TestRegister(t *testing.T) {
	auth := &fakeAuth{createdUID: "new-uid"}
	w := postJSON(t, newUserRouter(auth), "/register",
		`{"email":"new@askalgo.app","password":"hunter2","name":"New Dev"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"uid":"new-uid","email":"new@askalgo.app"}`, w.Body.String())
}

func TestRegisterMissingFields(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"email":"a@b.c"}`,
		`{"email":"a@b.c","password":"p"}`,
		`{"password":"p","name":"n"}`,
	} {
		w := postJSON(t, newUserRouter(&fakeAuth{}), "/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Contains(t, w.Body.String(), "Email, password, and name are required")
	}
}

func TestRegisterFirebaseFailure(t *testing.T) {
	auth := &fakeAuth{createErr: errors.New("EMAIL_EXISTS")}
	w := postJSON(t, newUserRouter(auth), "/register",
		`{"email":"dup@askalgo.app","password":"hunter2","name":"Dup"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyToken(t *testing.T) {
	auth := &fakeAuth{
		verifyUID: "u1",
		users:     map[string]*models.User{"u1": {UID: "u1", Email: "dev@askalgo.app"}},
	}
	w := postJSON(t, newUserRouter(auth), "/verify_token", `{"idToken":"good"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":"u1","email":"dev@askalgo.app"}`, w.Body.String())
}

func TestVerifyTokenMissing(t *testing.T) {
	w := postJSON(t, newUserRouter(&fakeAuth{}), "/verify_token", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID token is required")
}

func TestVerifyTokenInvalid(t *testing.T) {
	auth := &fakeAuth{verifyErr: errors.New("expired")}
	w := postJSON(t, newUserRouter(auth), "/verify_token", `{"idToken":"expired"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid ID token")
}
