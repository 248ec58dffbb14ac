package repositories

import (
	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v4"

	"github.com/zapdesk/zapdesk-backend/models"
)

// AccessTokenRepository validates the session tokens issued by the hosted auth
// platform. The backend never issues tokens; it shares the HS256 signing
// secret and only verifies.
type AccessTokenRepository struct {
	signingSecret []byte
}

func NewAccessTokenRepository(signingSecret []byte) *AccessTokenRepository {
	return &AccessTokenRepository{signingSecret: signingSecret}
}

var validationAlgo = jwt.SigningMethodHS256

type accessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ValidateAccessToken checks the signature and expiry and returns the identity
// baked into the token. The subject is the system user id.
func (repo *AccessTokenRepository) ValidateAccessToken(accessToken string) (models.Identity, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok || method != validationAlgo {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return repo.signingSecret, nil
	}

	token, err := jwt.ParseWithClaims(accessToken, &accessTokenClaims{}, keyFunc)
	if err != nil {
		return models.Identity{}, errors.Join(
			models.UnAuthorizedError,
			errors.Wrap(err, "Error parsing jwt token claims"),
		)
	}

	claims, ok := token.Claims.(*accessTokenClaims)
	if !ok || !token.Valid {
		return models.Identity{}, errors.Wrap(models.UnAuthorizedError, "invalid access token")
	}

	return models.Identity{
		UserId: models.UserId(claims.Subject),
		Email:  claims.Email,
	}, nil
}
