package user

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/config"
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

var (
	googlePublicKeys  map[string]*rsa.PublicKey
	googleKeysMutex   sync.RWMutex
	googleKeysExpires time.Time
)

// getGooglePublicKeys fetches and caches Google's public signing keys.
func getGooglePublicKeys() (map[string]*rsa.PublicKey, error) {
	googleKeysMutex.RLock()
	if time.Now().Before(googleKeysExpires) && googlePublicKeys != nil {
		defer googleKeysMutex.RUnlock()
		return googlePublicKeys, nil
	}
	googleKeysMutex.RUnlock()

	resp, err := http.Get(googleCertsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google certs: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Google certs: %w", err)
	}

	var certs struct {
		Keys []struct {
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.Unmarshal(body, &certs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Google certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, key := range certs.Keys {
		pubKey, err := rsaKeyFromModExp(key.N, key.E)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key %s: %w", key.Kid, err)
		}
		keys[key.Kid] = pubKey
	}

	googleKeysMutex.Lock()
	googlePublicKeys = keys
	googleKeysExpires = time.Now().Add(1 * time.Hour)
	googleKeysMutex.Unlock()

	return keys, nil
}

// rsaKeyFromModExp builds an RSA public key from base64url modulus and exponent.
func rsaKeyFromModExp(n, e string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent: %w", err)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}

type googleClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwtv4.RegisteredClaims
}

// verifyGoogleIDToken verifies a Google-issued ID token against Google's
// published keys and the configured client ID.
func verifyGoogleIDToken(idToken string) (*googleClaims, error) {
	keys, err := getGooglePublicKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get Google public keys: %w", err)
	}

	claims := &googleClaims{}
	token, err := jwtv4.ParseWithClaims(idToken, claims, func(token *jwtv4.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtv4.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("token missing kid header")
		}
		pubKey, exists := keys[kid]
		if !exists {
			return nil, errors.New("no matching public key found")
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Issuer != "https://accounts.google.com" && claims.Issuer != "accounts.google.com" {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if clientID := config.AppConfig.GoogleClientID; clientID != "" {
		if len(claims.Audience) == 0 || claims.Audience[0] != clientID {
			return nil, errors.New("token audience does not match client id")
		}
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, errors.New("token missing subject or email")
	}
	return claims, nil
}

// AuthenticateWithGoogle signs a user in with a Google ID token, creating the
// account on first sign-in and linking by email when one already exists.
func (s *DefaultUserService) AuthenticateWithGoogle(idToken string) (*AuthResponse, error) {
	claims, err := verifyGoogleIDToken(idToken)
	if err != nil {
		utils.GetLogger().Warn("AuthenticateWithGoogle: token rejected", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed")
	}

	email := strings.ToLower(claims.Email)
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateWithGoogle: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("google sign-in failed, please try again")
	}

	if userRec == nil {
		name := strings.TrimSpace(claims.Name)
		if name == "" {
			name = email
		}
		userRec = &models.User{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     email,
			Role:      models.RolePatient,
			GoogleSub: claims.Subject,
		}
		if err := s.Repo.Create(userRec); err != nil {
			utils.GetLogger().Error("AuthenticateWithGoogle: failed to create user", zap.Error(err))
			return nil, fmt.Errorf("google sign-in failed, please try again")
		}
	} else if userRec.GoogleSub == "" {
		if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{"google_sub": claims.Subject}); err != nil {
			utils.GetLogger().Error("AuthenticateWithGoogle: failed to link account", zap.Error(err))
			return nil, fmt.Errorf("google sign-in failed, please try again")
		}
	} else if userRec.GoogleSub != claims.Subject {
		return nil, fmt.Errorf("google sign-in failed")
	}

	return s.issueSession(userRec)
}
