package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aerolinehq/ndc-backend/pkg/config"
	"github.com/aerolinehq/ndc-backend/pkg/enums"
)

// HTTPDirectory talks to the external identity directory over HTTP.
type HTTPDirectory struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPDirectory wires the directory client from configuration.
func NewHTTPDirectory(cfg config.IdentityConfig) (*HTTPDirectory, error) {
	if cfg.DirectoryBaseURL == "" {
		return nil, errors.New("identity directory base url is required")
	}
	timeout := cfg.DirectoryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPDirectory{
		baseURL: strings.TrimRight(cfg.DirectoryBaseURL, "/"),
		apiKey:  cfg.DirectoryAPIKey,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type memberStatusRequest struct {
	LoginID string `json:"loginId"`
}

type memberStatusResponse struct {
	MemberID     string `json:"memberId"`
	LoginID      string `json:"loginId"`
	MemberStatus string `json:"memberStatus"`
	PasswordHash string `json:"passwordHash"`
}

// VerifyMemberStatus fetches the directory's view of the member account.
func (d *HTTPDirectory) VerifyMemberStatus(ctx context.Context, loginID string) (*MemberInfo, error) {
	body, err := d.post(ctx, "/v1/members/status", memberStatusRequest{LoginID: loginID})
	if err != nil {
		return nil, err
	}
	if dirErr := ParseDirectoryError(body); dirErr != nil {
		return nil, dirErr
	}

	var decoded memberStatusResponse
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, fmt.Errorf("decoding member status response: %w", err)
	}
	return &MemberInfo{
		MemberID:     decoded.MemberID,
		LoginID:      decoded.LoginID,
		MemberStatus: decoded.MemberStatus,
		PasswordHash: decoded.PasswordHash,
	}, nil
}

type initiateRequest struct {
	ChallengeTypes []enums.ChallengeType `json:"challengeTypes"`
	LoginID        string                `json:"loginId"`
}

// Initiate starts a challenge with the directory. The raw payload comes back
// untouched so the caller can inspect upstream error envelopes.
func (d *HTTPDirectory) Initiate(ctx context.Context, challengeTypes []enums.ChallengeType, loginID string) (string, error) {
	return d.post(ctx, "/v1/challenges/initiate", initiateRequest{
		ChallengeTypes: challengeTypes,
		LoginID:        loginID,
	})
}

func (d *HTTPDirectory) post(ctx context.Context, path string, payload any) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding directory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("building directory request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling identity directory: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading directory response: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("identity directory returned %d", resp.StatusCode)
	}
	// 4xx bodies flow back as-is: they carry the upstream error envelope.
	return string(body), nil
}
