package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanjaymalladi/AskAlgo-Backend/models"
)

// Authenticator is the Firebase Auth surface the user endpoints need.
// Implemented by pkg.AuthClient.
type Authenticator interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
	GetUser(ctx context.Context, uid string) (*models.User, error)
	CreateUser(ctx context.Context, email, password, name string) (*models.User, error)
}

// UserController handles the authentication endpoints.
type UserController struct {
	auth Authenticator
}

func NewUserController(auth Authenticator) *UserController {
	return &UserController{auth: auth}
}

// SignIn handles POST /signin. OAuth sign-ins arrive as an ID token;
// email/password sign-in happens on the frontend against Firebase
// directly, so it is rejected here.
func (c *UserController) SignIn(ctx *gin.Context) {
	type Request struct {
		IDToken  string `json:"idToken"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	switch {
	case req.IDToken != "":
		uid, err := c.auth.VerifyToken(ctx.Request.Context(), req.IDToken)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid ID token"})
			return
		}
		user, err := c.auth.GetUser(ctx.Request.Context(), uid)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"uid": user.UID, "email": user.Email})
	case req.Email != "" && req.Password != "":
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email/password sign-in is not supported via Admin SDK"})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
	}
}

// Register handles POST /register.
func (c *UserController) Register(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email, password, and name are required"})
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email, password, and name are required"})
		return
	}

	user, err := c.auth.CreateUser(ctx.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"uid": user.UID, "email": user.Email})
}

// VerifyToken handles POST /verify_token.
func (c *UserController) VerifyToken(ctx *gin.Context) {
	type Request struct {
		IDToken string `json:"idToken"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID token is required"})
		return
	}

	uid, err := c.auth.VerifyToken(ctx.Request.Context(), req.IDToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid ID token"})
		return
	}

	user, err := c.auth.GetUser(ctx.Request.Context(), uid)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"uid": user.UID, "email": user.Email})
}
