// Package identity implements the two-step sign-in flow backed by the
// external identity directory and an OTP challenge.
package identity

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/aerolinehq/ndc-backend/pkg/auth"
	"github.com/aerolinehq/ndc-backend/pkg/config"
	"github.com/aerolinehq/ndc-backend/pkg/enums"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
	"github.com/aerolinehq/ndc-backend/pkg/logger"
	"github.com/aerolinehq/ndc-backend/pkg/security"
)

// ChallengeStore holds pending challenges between the two sign-in steps.
type ChallengeStore interface {
	StoreChallenge(ctx context.Context, challengeID, payload string, ttl time.Duration) error
	GetChallenge(ctx context.Context, challengeID string) (string, error)
	DeleteChallenge(ctx context.Context, challengeID string) error
}

// SignInRequest is step one: credentials.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse asks the client to complete the issued challenge.
type SignInResponse struct {
	ChallengeID   string `json:"challengeId"`
	ChallengeType string `json:"challengeType"`
	ExpiresIn     int    `json:"expiresIn"`
}

// VerifyRequest is step two: the challenge answer.
type VerifyRequest struct {
	ChallengeID string `json:"challengeId"`
	OTP         string `json:"otp"`
}

// VerifyResponse carries the minted access token.
type VerifyResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

type challengeState struct {
	MemberID string `json:"memberId"`
	LoginID  string `json:"loginId"`
	OTP      string `json:"otp"`
}

// Service orchestrates sign-in against the directory collaborator.
type Service struct {
	directory  Directory
	challenges ChallengeStore
	logg       *logger.Logger
	jwtCfg     config.JWTConfig
	idCfg      config.IdentityConfig
	now        func() time.Time
}

// NewService wires the identity service.
func NewService(directory Directory, challenges ChallengeStore, logg *logger.Logger, jwtCfg config.JWTConfig, idCfg config.IdentityConfig) *Service {
	return &Service{
		directory:  directory,
		challenges: challenges,
		logg:       logg,
		jwtCfg:     jwtCfg,
		idCfg:      idCfg,
		now:        time.Now,
	}
}

// SignIn checks the member's status and password, then initiates an OTP
// challenge through the directory. Directory error payloads surface as
// business errors carrying the upstream numeric code.
func (s *Service) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	if req.Email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	ctx = s.logg.WithField(ctx, "login_id", req.Email)

	member, err := s.directory.VerifyMemberStatus(ctx, req.Email)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "identity directory unavailable")
	}
	if member.MemberStatus != MemberStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "member is not active")
	}

	ok, err := security.VerifyPassword(req.Password, member.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	payload, err := s.directory.Initiate(ctx, []enums.ChallengeType{enums.ChallengeOneTimePasscode}, req.Email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "challenge initiation failed")
	}
	if dirErr := ParseDirectoryError(payload); dirErr != nil {
		return nil, dirErr
	}

	otp, err := security.GenerateOTP(s.idCfg.OTPLength)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating passcode")
	}

	challengeID := uuid.NewString()
	state, err := json.Marshal(challengeState{
		MemberID: member.MemberID,
		LoginID:  member.LoginID,
		OTP:      otp,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding challenge state")
	}
	if err := s.challenges.StoreChallenge(ctx, challengeID, string(state), s.idCfg.ChallengeTTL); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing challenge")
	}

	s.logg.Info(ctx, "sign-in challenge issued")
	return &SignInResponse{
		ChallengeID:   challengeID,
		ChallengeType: string(enums.ChallengeOneTimePasscode),
		ExpiresIn:     int(s.idCfg.ChallengeTTL.Seconds()),
	}, nil
}

// Verify completes the challenge and mints an access token. Challenges are
// single use: a consumed challenge is deleted before the token is returned.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	if req.ChallengeID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "challengeId is required")
	}
	if req.OTP == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "otp is required")
	}

	payload, err := s.challenges.GetChallenge(ctx, req.ChallengeID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired challenge")
	}

	var state challengeState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding challenge state")
	}

	if subtle.ConstantTimeCompare([]byte(state.OTP), []byte(req.OTP)) != 1 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid passcode")
	}

	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		MemberID: state.MemberID,
		LoginID:  state.LoginID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting access token")
	}

	if err := s.challenges.DeleteChallenge(ctx, req.ChallengeID); err != nil {
		s.logg.Warn(ctx, "deleting consumed challenge failed")
	}

	return &VerifyResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.jwtCfg.ExpirationMinutes * 60,
	}, nil
}
