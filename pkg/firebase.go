package pkg

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/sanjaymalladi/AskAlgo-Backend/config"
	"github.com/sanjaymalladi/AskAlgo-Backend/models"
)

// NewFirebaseApp initializes the Firebase Admin SDK from configuration.
// Credentials come from a service-account file when one is configured,
// otherwise from the discrete fields assembled into a credential
// document.
func NewFirebaseApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	var opt option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opt = option.WithCredentialsFile(cfg.Firebase.CredentialsFile)
	} else {
		creds, err := cfg.ServiceAccountJSON()
		if err != nil {
			return nil, err
		}
		opt = option.WithCredentialsJSON(creds)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: cfg.Firebase.DatabaseURL}, opt)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	return app, nil
}

// AuthClient wraps the Firebase Auth client behind the small interfaces
// the middleware and controller layers consume, keeping handlers
// testable without the Admin SDK.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{client: client}
}

// VerifyToken validates a Firebase ID token and returns its uid.
func (a *AuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := a.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("verifying id token: %w", err)
	}
	return token.UID, nil
}

// GetUser looks up a user record by uid.
func (a *AuthClient) GetUser(ctx context.Context, uid string) (*models.User, error) {
	record, err := a.client.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", uid, err)
	}
	return &models.User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

// CreateUser registers a new email/password user.
func (a *AuthClient) CreateUser(ctx context.Context, email, password, name string) (*models.User, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)

	record, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return &models.User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}
