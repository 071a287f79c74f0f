package identity

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aerolinehq/ndc-backend/pkg/enums"
	pkgerrors "github.com/aerolinehq/ndc-backend/pkg/errors"
)

// MemberInfo is the directory's view of a member account.
type MemberInfo struct {
	MemberID     string
	LoginID      string
	MemberStatus string
	PasswordHash string
}

// MemberStatusActive is the only status allowed to sign in.
const MemberStatusActive = "ACTIVE"

// Directory is the external identity directory collaborator. Initiate returns
// the raw upstream payload; error payloads are detected with
// ParseDirectoryError.
type Directory interface {
	VerifyMemberStatus(ctx context.Context, loginID string) (*MemberInfo, error)
	Initiate(ctx context.Context, challengeTypes []enums.ChallengeType, loginID string) (string, error)
}

// directoryErrorPayload is the upstream error envelope, e.g.
//
//	{"error":"user_not_found","error_description":"User not found in directory","error_codes":[90001]}
type directoryErrorPayload struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCodes       []int  `json:"error_codes"`
}

// ParseDirectoryError inspects an Initiate payload for the upstream error
// envelope. A recognized error maps to a business error carrying the first
// upstream numeric code verbatim, never to a 500. Nil means the payload is
// not an error.
func ParseDirectoryError(payload string) error {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" || !strings.HasPrefix(trimmed, "{") {
		return nil
	}

	var envelope directoryErrorPayload
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return nil
	}
	if envelope.Error == "" {
		return nil
	}

	message := envelope.ErrorDescription
	if message == "" {
		message = envelope.Error
	}
	if len(envelope.ErrorCodes) == 0 {
		return pkgerrors.New(pkgerrors.CodeDependency, message)
	}
	return pkgerrors.NewBusiness(strconv.Itoa(envelope.ErrorCodes[0]), message)
}
