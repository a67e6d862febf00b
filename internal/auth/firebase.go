package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/OmkarKashyap/Auto-Reason/pkg/config"
	"github.com/OmkarKashyap/Auto-Reason/pkg/logger"
)

// FirebaseClient implements Verifier and Registrar on the Firebase Admin SDK
type FirebaseClient struct {
	auth   *fbauth.Client
	logger *zap.Logger
}

// NewFirebaseClient initializes the Admin SDK from configured credentials.
// Inline JSON wins over a key file; with neither set the SDK uses
// application default credentials.
func NewFirebaseClient(ctx context.Context, cfg *config.Config) (*FirebaseClient, error) {
	var opts []option.ClientOption
	switch {
	case cfg.FirebaseCredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseCredentialsJSON)))
	case cfg.FirebaseCredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase auth client: %w", err)
	}

	return &FirebaseClient{
		auth:   client,
		logger: logger.Get(),
	}, nil
}

// Verify checks the ID token against Firebase, including the revocation
// list, then loads the user record so disabled and deleted subjects reject
// distinctly.
func (c *FirebaseClient) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := c.auth.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		switch {
		case fbauth.IsIDTokenExpired(err):
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		case fbauth.IsIDTokenRevoked(err):
			return nil, fmt.Errorf("%w: %v", ErrTokenRevoked, err)
		case fbauth.IsUserDisabled(err):
			return nil, fmt.Errorf("%w: %v", ErrSubjectDisabled, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		}
	}

	user, err := c.auth.GetUser(ctx, token.UID)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, token.UID)
		}
		return nil, fmt.Errorf("failed to load user record %s: %w", token.UID, err)
	}
	if user.Disabled {
		return nil, fmt.Errorf("%w: %s", ErrSubjectDisabled, token.UID)
	}

	return &Identity{
		SubjectID: user.UID,
		Email:     user.Email,
		Name:      user.DisplayName,
	}, nil
}

// Register creates a Firebase user with the given profile
func (c *FirebaseClient) Register(ctx context.Context, fullName, email, password string) (string, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(fullName)

	user, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", fmt.Errorf("%w: %s", ErrEmailExists, email)
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	c.logger.Info("Created new user", zap.String("uid", user.UID))
	return user.UID, nil
}
