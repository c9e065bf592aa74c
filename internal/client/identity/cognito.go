package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrijs2005/bookshelf/internal/client/store"
	"github.com/dmitrijs2005/bookshelf/internal/cryptox"
	"github.com/dmitrijs2005/bookshelf/internal/dbx"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
)

// session store keys
const (
	keyAccessToken  = "access_token"
	keyIDToken      = "id_token"
	keyRefreshToken = "refresh_token"
	keyExpiresAt    = "expires_at"
	keyUsername     = "username"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newCognitoClientFromConfig = func(cfg aws.Config, optFns ...func(*cip.Options)) *cip.Client {
		return cip.NewFromConfig(cfg, optFns...)
	}
)

// cognitoAPI is the subset of the cognito-idp client the provider calls.
type cognitoAPI interface {
	SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cip.ConfirmSignUpInput, optFns ...func(*cip.Options)) (*cip.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cip.ResendConfirmationCodeInput, optFns ...func(*cip.Options)) (*cip.ResendConfirmationCodeOutput, error)
	InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error)
	GlobalSignOut(ctx context.Context, params *cip.GlobalSignOutInput, optFns ...func(*cip.Options)) (*cip.GlobalSignOutOutput, error)
	GetUser(ctx context.Context, params *cip.GetUserInput, optFns ...func(*cip.Options)) (*cip.GetUserOutput, error)
}

// Options configures a CognitoProvider.
type Options struct {
	Region       string
	ClientID     string
	ClientSecret string
	// Endpoint overrides the cognito-idp endpoint, for local emulators.
	Endpoint string
}

// CognitoProvider implements Provider against a Cognito user pool and
// keeps the resulting tokens in the local session store.
type CognitoProvider struct {
	api          cognitoAPI
	db           *sql.DB
	clientID     string
	clientSecret string
	logger       logging.Logger
}

// NewCognitoProvider builds the cognito-idp client and binds it to the
// session database. User pool sign-up and sign-in calls are unsigned, so
// no real AWS credentials are required; when an endpoint override is set,
// static placeholder keys keep the SDK's credential chain quiet.
func NewCognitoProvider(ctx context.Context, db *sql.DB, opts Options, logger logging.Logger) (*CognitoProvider, error) {
	credsProvider := aws.CredentialsProvider(aws.AnonymousCredentials{})
	if opts.Endpoint != "" {
		credsProvider = credentials.NewStaticCredentialsProvider("local", "local", "")
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credsProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	api := newCognitoClientFromConfig(cfg, func(o *cip.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return &CognitoProvider{
		api:          api,
		db:           db,
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
		logger:       logger,
	}, nil
}

func (p *CognitoProvider) getStore() store.Store {
	return store.NewSQLiteStore(p.db)
}

// secretHash computes the SECRET_HASH auth parameter required by app
// clients configured with a secret.
func (p *CognitoProvider) secretHash(username string) string {
	return cryptox.SecretHash(p.clientSecret, username, p.clientID)
}

// SignUp registers a new account. The pool e-mails a confirmation code
// asynchronously; a nil return means the account awaits confirmation.
func (p *CognitoProvider) SignUp(ctx context.Context, email, password, name string) error {
	in := &cip.SignUpInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(email),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("name"), Value: aws.String(name)},
		},
	}
	if p.clientSecret != "" {
		in.SecretHash = aws.String(p.secretHash(email))
	}

	if _, err := p.api.SignUp(ctx, in); err != nil {
		return p.mapError(err)
	}
	return nil
}

func (p *CognitoProvider) ConfirmSignUp(ctx context.Context, email, code string) error {
	in := &cip.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
	}
	if p.clientSecret != "" {
		in.SecretHash = aws.String(p.secretHash(email))
	}

	if _, err := p.api.ConfirmSignUp(ctx, in); err != nil {
		return p.mapError(err)
	}
	return nil
}

func (p *CognitoProvider) ResendCode(ctx context.Context, email string) error {
	in := &cip.ResendConfirmationCodeInput{
		ClientId: aws.String(p.clientID),
		Username: aws.String(email),
	}
	if p.clientSecret != "" {
		in.SecretHash = aws.String(p.secretHash(email))
	}

	if _, err := p.api.ResendConfirmationCode(ctx, in); err != nil {
		return p.mapError(err)
	}
	return nil
}

// SignIn authenticates with USER_PASSWORD_AUTH and persists the returned
// tokens. A (false, nil) result means the pool demanded a challenge this
// client does not implement (e.g. a forced password reset).
func (p *CognitoProvider) SignIn(ctx context.Context, email, password string) (bool, error) {
	params := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	if p.clientSecret != "" {
		params["SECRET_HASH"] = p.secretHash(email)
	}

	out, err := p.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeUserPasswordAuth,
		ClientId:       aws.String(p.clientID),
		AuthParameters: params,
	})
	if err != nil {
		return false, p.mapError(err)
	}

	if out.AuthenticationResult == nil {
		p.logger.Warn(ctx, "sign-in returned a challenge", "challenge", string(out.ChallengeName))
		return false, nil
	}

	sess := sessionFromAuthResult(email, out.AuthenticationResult)
	if err := p.saveSession(ctx, sess); err != nil {
		return false, err
	}
	return true, nil
}

// SignOut revokes the tokens best-effort and always clears the local
// session.
func (p *CognitoProvider) SignOut(ctx context.Context) error {
	sess, err := p.loadSession(ctx)
	if err == nil && sess.AccessToken != "" {
		_, err := p.api.GlobalSignOut(ctx, &cip.GlobalSignOutInput{
			AccessToken: aws.String(sess.AccessToken),
		})
		if err != nil {
			p.logger.Warn(ctx, "global sign-out failed", "error", err)
		}
	}

	return p.getStore().Clear(ctx)
}

// FetchSession returns the persisted session. An expired access token is
// refreshed with at most one REFRESH_TOKEN_AUTH round trip; any failure
// on that path collapses to ErrNoSession.
func (p *CognitoProvider) FetchSession(ctx context.Context) (*Session, error) {
	sess, err := p.loadSession(ctx)
	if err != nil {
		return nil, err
	}

	if sess.Valid() {
		return sess, nil
	}

	if sess.RefreshToken == "" {
		return nil, ErrNoSession
	}

	refreshed, err := p.refresh(ctx, sess)
	if err != nil {
		p.logger.Debug(ctx, "token refresh failed", "error", err)
		return nil, ErrNoSession
	}
	return refreshed, nil
}

// AccessToken returns a bearer token for backend calls, going through
// FetchSession so an expired token is refreshed first.
func (p *CognitoProvider) AccessToken(ctx context.Context) (string, error) {
	sess, err := p.FetchSession(ctx)
	if err != nil {
		return "", err
	}
	return sess.AccessToken, nil
}

// CurrentUser identifies the signed-in account via GetUser. It reads the
// stored session as-is; callers wanting a refresh run FetchSession first.
func (p *CognitoProvider) CurrentUser(ctx context.Context) (*ProviderUser, error) {
	sess, err := p.loadSession(ctx)
	if err != nil {
		return nil, err
	}

	out, err := p.api.GetUser(ctx, &cip.GetUserInput{
		AccessToken: aws.String(sess.AccessToken),
	})
	if err != nil {
		return nil, p.mapError(err)
	}

	u := &ProviderUser{Username: aws.ToString(out.Username)}
	for _, attr := range out.UserAttributes {
		if aws.ToString(attr.Name) == "sub" {
			u.ID = aws.ToString(attr.Value)
		}
	}
	return u, nil
}

func (p *CognitoProvider) refresh(ctx context.Context, sess *Session) (*Session, error) {
	params := map[string]string{
		"REFRESH_TOKEN": sess.RefreshToken,
	}
	if p.clientSecret != "" {
		params["SECRET_HASH"] = p.secretHash(sess.Username)
	}

	out, err := p.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeRefreshTokenAuth,
		ClientId:       aws.String(p.clientID),
		AuthParameters: params,
	})
	if err != nil {
		return nil, p.mapError(err)
	}
	if out.AuthenticationResult == nil {
		return nil, ErrNoSession
	}

	refreshed := sessionFromAuthResult(sess.Username, out.AuthenticationResult)
	if refreshed.RefreshToken == "" {
		// the pool does not rotate refresh tokens on this flow
		refreshed.RefreshToken = sess.RefreshToken
	}

	if err := p.saveSession(ctx, refreshed); err != nil {
		return nil, err
	}
	return refreshed, nil
}

func sessionFromAuthResult(username string, res *types.AuthenticationResultType) *Session {
	return &Session{
		AccessToken:  aws.ToString(res.AccessToken),
		IDToken:      aws.ToString(res.IdToken),
		RefreshToken: aws.ToString(res.RefreshToken),
		ExpiresAt:    time.Now().Add(time.Duration(res.ExpiresIn) * time.Second),
		Username:     username,
	}
}

// saveSession persists all session keys in a single transaction.
func (p *CognitoProvider) saveSession(ctx context.Context, sess *Session) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := store.NewSQLiteStore(tx)

		if err := st.Set(ctx, keyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}
		if err := st.Set(ctx, keyIDToken, []byte(sess.IDToken)); err != nil {
			return err
		}
		if err := st.Set(ctx, keyRefreshToken, []byte(sess.RefreshToken)); err != nil {
			return err
		}
		if err := st.Set(ctx, keyExpiresAt, []byte(sess.ExpiresAt.UTC().Format(time.RFC3339))); err != nil {
			return err
		}
		if err := st.Set(ctx, keyUsername, []byte(sess.Username)); err != nil {
			return err
		}
		return nil
	})
}

// loadSession reads the persisted session; ErrNoSession when the store
// holds no usable tokens.
func (p *CognitoProvider) loadSession(ctx context.Context) (*Session, error) {
	m, err := p.getStore().List(ctx)
	if err != nil {
		return nil, err
	}

	if len(m[keyAccessToken]) == 0 {
		return nil, ErrNoSession
	}

	expiresAt, err := time.Parse(time.RFC3339, string(m[keyExpiresAt]))
	if err != nil {
		return nil, ErrNoSession
	}

	return &Session{
		AccessToken:  string(m[keyAccessToken]),
		IDToken:      string(m[keyIDToken]),
		RefreshToken: string(m[keyRefreshToken]),
		ExpiresAt:    expiresAt,
		Username:     string(m[keyUsername]),
	}, nil
}

// mapError converts cognito-idp failures to the package sentinels;
// anything unrecognized is wrapped and returned as-is.
func (p *CognitoProvider) mapError(err error) error {
	if err == nil {
		return nil
	}

	var (
		userExists   *types.UsernameExistsException
		notConfirmed *types.UserNotConfirmedException
		codeMismatch *types.CodeMismatchException
		codeExpired  *types.ExpiredCodeException
		notAuth      *types.NotAuthorizedException
		limit        *types.LimitExceededException
		tooMany      *types.TooManyRequestsException
		notFound     *types.UserNotFoundException
	)

	switch {
	case errors.As(err, &userExists):
		return ErrUserExists
	case errors.As(err, &notConfirmed):
		return ErrUserNotConfirmed
	case errors.As(err, &codeMismatch):
		return ErrCodeMismatch
	case errors.As(err, &codeExpired):
		return ErrCodeExpired
	case errors.As(err, &notAuth):
		return ErrNotAuthorized
	case errors.As(err, &limit), errors.As(err, &tooMany):
		return ErrLimitExceeded
	case errors.As(err, &notFound):
		return ErrUserNotFound
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		return fmt.Errorf("identity provider error %s: %w", ae.ErrorCode(), err)
	}
	return fmt.Errorf("identity provider error: %w", err)
}
